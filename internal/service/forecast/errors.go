package forecast

import "errors"

var (
	ErrNoPatient = errors.New("no patient to forecast: add a record first")
	ErrReference = errors.New("reference dataset unavailable")
)
