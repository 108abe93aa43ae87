package features

import "errors"

var (
	ErrDuplicateFeature       = errors.New("duplicate feature")
	ErrUnknownSource          = errors.New("feature source is not a configured field")
	ErrFeatureCount           = errors.New("feature count does not match the classifier")
	ErrEmptyRecord            = errors.New("record is empty")
	ErrMissingValue           = errors.New("value is missing")
	ErrNotNumeric             = errors.New("value is not numeric")
	ErrReferenceNotFound      = errors.New("reference dataset not found")
	ErrInvalidReference       = errors.New("invalid reference dataset")
	ErrMissingReferenceColumn = errors.New("reference dataset lacks a feature column")
)
