package request

import (
	"github.com/Guyuepp/blog-comments/domain"
)

// Comment is the body of create, edit and reply.
type Comment struct {
	Content string `json:"content" binding:"required,max=4096"`
}

type Ordering struct {
	Column string               `json:"column" binding:"required,sortcol"`
	Order  domain.SortDirection `json:"order" binding:"required,sortdir"`
}

// ListBody is the JSON form of a listing request.
type ListBody struct {
	Offset int64      `json:"offset" binding:"min=0"`
	Limit  int64      `json:"limit" binding:"required,min=1,max=100"`
	Order  []Ordering `json:"order" binding:"dive"`
}

// ToDomain: Request -> Domain
func (r *ListBody) ToDomain() domain.ListQuery {
	order := make([]domain.Ordering, len(r.Order))
	for i, o := range r.Order {
		order[i] = domain.Ordering{Column: o.Column, Direction: o.Order}
	}
	return domain.ListQuery{
		Offset: r.Offset,
		Limit:  r.Limit,
		Order:  order,
	}
}

// ListParams is the query string form: ?offset=0&limit=10&order=created:desc&order=uuid
type ListParams struct {
	Offset int64    `form:"offset" binding:"min=0"`
	Limit  int64    `form:"limit" binding:"required,min=1,max=100"`
	Order  []string `form:"order"`
}

func (r *ListParams) ToDomain() (domain.ListQuery, error) {
	order := make([]domain.Ordering, 0, len(r.Order))
	for _, raw := range r.Order {
		o, err := domain.ParseOrdering(raw)
		if err != nil {
			return domain.ListQuery{}, err
		}
		order = append(order, o)
	}
	return domain.ListQuery{
		Offset: r.Offset,
		Limit:  r.Limit,
		Order:  order,
	}, nil
}
