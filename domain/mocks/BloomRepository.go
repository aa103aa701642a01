package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// BloomRepository is a mock type for the BloomRepository type
type BloomRepository struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, key
func (_m *BloomRepository) Add(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

// Exists provides a mock function with given fields: ctx, key
func (_m *BloomRepository) Exists(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

// BulkAdd provides a mock function with given fields: ctx, keys
func (_m *BloomRepository) BulkAdd(ctx context.Context, keys []string) error {
	ret := _m.Called(ctx, keys)
	return ret.Error(0)
}
