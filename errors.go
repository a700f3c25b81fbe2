package crownpages

import "fmt"

// ErrorType represents the category of error.
type ErrorType string

const (
	ErrorTypeSource   ErrorType = "source"
	ErrorTypeParse    ErrorType = "parse"
	ErrorTypeNotFound ErrorType = "not_found"
	ErrorTypePublish  ErrorType = "publish"
)

// Error is the structured error returned by the definition loaders and the
// bundle publisher. Validation outcomes are not errors; they travel as
// Result values.
type Error struct {
	Type    ErrorType      `json:"type"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s:%s] field '%s': %s", e.Type, e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithField adds field context.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// WithDetail adds a single detail.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewError constructs a structured error.
func NewError(errType ErrorType, code, message string) *Error {
	return &Error{Type: errType, Code: code, Message: message}
}

// Error codes emitted by this package.
const (
	ErrCodeDefinitionParse   = "DEFINITION_PARSE_FAILED"
	ErrCodeDefinitionInvalid = "DEFINITION_INVALID"
	ErrCodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	ErrCodeTypeMismatch      = "TYPE_KEY_MISMATCH"
	ErrCodePublishFailed     = "PUBLISH_FAILED"
)
