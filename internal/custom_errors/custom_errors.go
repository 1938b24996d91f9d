package custom_errors

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")

	ErrUserValidation = errors.New("user validation failed")
	ErrPostValidation = errors.New("post validation failed")

	ErrDatabaseConnection = errors.New("database connection error")
	ErrDatabaseQuery      = errors.New("database query error")
	ErrDatabaseScan       = errors.New("database scan error")

	ErrCacheMiss = errors.New("cache miss")
)
