package registry

import "errors"

var (
	ErrEmpty        = errors.New("patient registry is empty")
	ErrExportFailed = errors.New("registry export failed")
)
