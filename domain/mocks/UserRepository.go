package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comments/domain"
	mock "github.com/stretchr/testify/mock"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

// GetByIDs provides a mock function with given fields: ctx, userIDs
func (_m *UserRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	ret := _m.Called(ctx, userIDs)
	var r0 []domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}
	return r0, ret.Error(1)
}
