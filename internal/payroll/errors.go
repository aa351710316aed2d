package payroll

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors.
	ErrInvalidSchedule = errors.New("invalid tax bracket schedule")
	ErrInvalidRates    = errors.New("invalid insurance rate configuration")

	// Input errors.
	ErrNegativeIncome = errors.New("taxable income must not be negative")
)

// ConfigError describes a malformed schedule or rate table. It wraps
// ErrInvalidSchedule or ErrInvalidRates.
type ConfigError struct {
	Kind   error
	Field  string
	Index  int
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: %s[%d]: %s", e.Kind, e.Field, e.Index, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Kind
}

func scheduleError(index int, format string, args ...any) error {
	return &ConfigError{
		Kind:   ErrInvalidSchedule,
		Field:  "brackets",
		Index:  index,
		Reason: fmt.Sprintf(format, args...),
	}
}

func ratesError(field, format string, args ...any) error {
	return &ConfigError{
		Kind:   ErrInvalidRates,
		Field:  field,
		Index:  -1,
		Reason: fmt.Sprintf(format, args...),
	}
}
