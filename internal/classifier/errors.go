package classifier

import "errors"

var (
	ErrEmptyBatch     = errors.New("empty batch")
	ErrFeatureCount   = errors.New("feature vector has the wrong length")
	ErrInconsistent   = errors.New("classifier returned inconsistent output")
	ErrModelNotLoaded = errors.New("model artifact could not be loaded")
)
