package request

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Guyuepp/blog-comments/domain"
)

// RegisterValidators adds the sortcol and sortdir tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	if err := v.RegisterValidation("sortcol", validateSortColumn); err != nil {
		return err
	}
	return v.RegisterValidation("sortdir", validateSortDirection)
}

func validateSortColumn(fl validator.FieldLevel) bool {
	_, ok := domain.SortableColumns[fl.Field().String()]
	return ok
}

func validateSortDirection(fl validator.FieldLevel) bool {
	d := domain.SortDirection(fl.Field().Int())
	return d == domain.Ascending || d == domain.Descending
}
