package moderation

import "errors"

var (
	ErrClassifierDisabled = errors.New("AI moderation disabled")
	ErrProviderFailure    = errors.New("classifier provider call failed")
	ErrMalformedResponse  = errors.New("classifier response is malformed")
)

// ViolationError is a policy rejection. It is the only moderation outcome
// that blocks a submission.
type ViolationError struct {
	Field   FieldName
	Message string
}

func (e *ViolationError) Error() string {
	if e.Field != "" {
		return string(e.Field) + ": " + e.Message
	}
	return e.Message
}

func NewViolationError(field FieldName, message string) error {
	return &ViolationError{Field: field, Message: message}
}

// Err returns a *ViolationError for a rejected submission and nil otherwise.
func (r TextResult) Err() error {
	if r.OK {
		return nil
	}
	return NewViolationError(r.RejectedField, r.Message)
}

func (r ImageResult) Err() error {
	if r.OK {
		return nil
	}
	return NewViolationError("", r.Message)
}
