package tracker

import "errors"

type ErrorCode string

const (
	ErrorInvalid ErrorCode = "invalid"
)

type TrackerError struct {
	Code    ErrorCode
	Message string
}

func (e *TrackerError) Error() string { return e.Message }

func NewInvalidError(msg string) error { return &TrackerError{Code: ErrorInvalid, Message: msg} }

func AsTrackerError(err error) (*TrackerError, bool) {
	var te *TrackerError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
