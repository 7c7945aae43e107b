package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two failure classes of a Generate call.
var (
	// ErrConfiguration indicates a malformed or contradictory generation config.
	ErrConfiguration = errors.New("unchecker: invalid configuration")
	// ErrMalformedSamType indicates a type that cannot be adapted.
	ErrMalformedSamType = errors.New("unchecker: malformed SAM type")
)

// ConfigurationError reports a config problem found before or during
// generation.
type ConfigurationError struct {
	Option  string   // Config option at fault, e.g. "unchecked" or "sam_types".
	Names   []string // Offending type or identifier names.
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unchecker: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(option, message string, names ...string) *ConfigurationError {
	return &ConfigurationError{
		Option:  option,
		Names:   names,
		Message: message,
	}
}

// MalformedSamTypeError reports a type that does not have exactly one
// qualifying abstract method, or whose method already throws a checked
// exception.
type MalformedSamTypeError struct {
	Type      string   // Qualified type name.
	Count     int      // Number of abstract methods found.
	Methods   []string // Names of the abstract methods found.
	Exception string   // Checked exception already thrown, if that is the problem.
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *MalformedSamTypeError) Error() string {
	var b strings.Builder

	b.WriteString("unchecker: malformed SAM type ")
	b.WriteString(e.Type)

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *MalformedSamTypeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for MalformedSamTypeError.
func (e *MalformedSamTypeError) Is(target error) bool {
	return target == ErrMalformedSamType
}

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsMalformedSamTypeError reports whether err is or wraps a MalformedSamTypeError.
func IsMalformedSamTypeError(err error) bool {
	return errors.Is(err, ErrMalformedSamType)
}
