package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration   = errors.New("configuration error")
	ErrStorage         = errors.New("storage error")
	ErrExternalService = errors.New("external service error")

	// ErrChannelNotFound means the announcement channel is missing or not visible to the bot
	ErrChannelNotFound = errors.New("announcement channel not found")
)

// Error carries one of the error kinds above plus the operation that failed.
// errors.Is matches both the kind and anything in the wrapped chain.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func StorageError(op string, err error) error {
	return &Error{Kind: ErrStorage, Op: op, Err: err}
}

func ExternalError(op string, err error) error {
	return &Error{Kind: ErrExternalService, Op: op, Err: err}
}

func ConfigError(format string, args ...any) error {
	return &Error{Kind: ErrConfiguration, Op: fmt.Sprintf(format, args...)}
}

// ValidationRule names the birthday input rule that was violated
type ValidationRule string

const (
	RuleDayRange    ValidationRule = "day_range"
	RuleMonthRange  ValidationRule = "month_range"
	RuleMonthLength ValidationRule = "month_length"
	RuleYearRange   ValidationRule = "year_range"
)

// ValidationError rejects user input before it reaches the store. Message is
// safe to show to the user as-is.
type ValidationError struct {
	Rule    ValidationRule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
