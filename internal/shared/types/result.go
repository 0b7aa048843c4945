package types

import (
	"errors"
)

// Status represents the outcome of a single operation
type Status string

const (
	StatusSucceeded     Status = "succeeded"
	StatusFailed        Status = "failed"
	StatusNotApplicable Status = "not_applicable" // Operation does not apply to this kind of path
	StatusSkipped       Status = "skipped"        // Not attempted because an earlier item failed
)

// ErrNotApplicable is matched by FromError to produce StatusNotApplicable.
// Packages reporting "operation not applicable" wrap or alias it.
var ErrNotApplicable = errors.New("operation not applicable")

// Result represents the outcome of an operation on one path
type Result struct {
	Path   string                 `json:"path,omitempty"`
	Status Status                 `json:"status"`
	Data   map[string]interface{} `json:"data,omitempty"`
	Error  *string                `json:"error,omitempty"`

	err error
}

// OK reports whether the operation succeeded
func (r *Result) OK() bool {
	return r != nil && r.Status == StatusSucceeded
}

// Err returns the error that produced a failed or not-applicable result
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	return r.err
}

// Success helper
func Success(path string, data map[string]interface{}) *Result {
	return &Result{Path: path, Status: StatusSucceeded, Data: data}
}

// Failure helper
func Failure(path string, err error) *Result {
	return &Result{Path: path, Status: StatusFailed, Error: errorString(err), err: err}
}

// NotApplicable helper
func NotApplicable(path string, err error) *Result {
	return &Result{Path: path, Status: StatusNotApplicable, Error: errorString(err), err: err}
}

// Skipped helper
func Skipped(path string) *Result {
	return &Result{Path: path, Status: StatusSkipped}
}

// FromError classifies err into a Result for path
func FromError(path string, err error) *Result {
	switch {
	case err == nil:
		return Success(path, nil)
	case errors.Is(err, ErrNotApplicable):
		return NotApplicable(path, err)
	default:
		return Failure(path, err)
	}
}

func errorString(err error) *string {
	if err == nil {
		return nil
	}
	msg := err.Error()
	return &msg
}
