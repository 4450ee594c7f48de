package models

import "errors"

var (
	ErrNotFound    = errors.New("file not found")
	ErrIOFault     = errors.New("storage io fault")
	ErrInvalidName = errors.New("invalid file name")
	ErrMissingFile = errors.New("form field \"file\" is required")
	ErrUpstream    = errors.New("storage service unreachable")
)

// FaultError оборачивает ошибку файловой системы вместе с названием операции.
// errors.Is(err, ErrIOFault) истинно для любой FaultError.
type FaultError struct {
	Op  string
	Err error
}

func (e *FaultError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *FaultError) Unwrap() error { return e.Err }

func (e *FaultError) Is(target error) bool { return target == ErrIOFault }

// Fault конструирует FaultError; nil остаётся nil.
func Fault(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FaultError{Op: op, Err: err}
}
