package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUnauthorized will throw if the caller has no identity or does not own the item
	ErrUnauthorized = errors.New("you are not allowed to perform this action")
	// ErrPersistFailed will throw if a write went through but could not be read back
	ErrPersistFailed = errors.New("we are not able to save this comment")
	// ErrStoreUnavailable wraps infrastructure failures of the persistence backend
	ErrStoreUnavailable = errors.New("storage is unavailable")
	// ErrCacheMiss is returned by cache implementations when a key is absent
	ErrCacheMiss = errors.New("cache miss")
)
