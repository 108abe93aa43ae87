package fields

import "errors"

var (
	ErrConfigNotFound = errors.New("field configuration not found")
	ErrInvalidConfig  = errors.New("invalid field configuration")
)
