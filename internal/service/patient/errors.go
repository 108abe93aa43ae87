package patient

import "errors"

var (
	ErrNoPatients        = errors.New("no patients have been entered")
	ErrInvalidSubmission = errors.New("invalid patient submission")
)
