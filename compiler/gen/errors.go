package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("namegen: missing configuration")
	// ErrGenerationFailed indicates an artifact could not be rendered or written.
	ErrGenerationFailed = errors.New("namegen: code generation failed")
	// ErrDiagnostics indicates that strict mode rejected the name lists.
	ErrDiagnostics = errors.New("namegen: name diagnostics reported")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("namegen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("namegen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "format", "write", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("namegen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
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
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// DiagnosticsError carries the diagnostics that failed a strict run.
type DiagnosticsError struct {
	Diagnostics []Diagnostic
}

// Error implements the error interface.
func (e *DiagnosticsError) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return "namegen: name diagnostics reported"
	case 1:
		return "namegen: " + e.Diagnostics[0].String()
	default:
		return fmt.Sprintf("namegen: %s (and %d more)", e.Diagnostics[0], len(e.Diagnostics)-1)
	}
}

// Is reports whether the target matches ErrDiagnostics.
func (e *DiagnosticsError) Is(target error) bool {
	return target == ErrDiagnostics
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsDiagnosticsError reports whether the error is a DiagnosticsError.
func IsDiagnosticsError(err error) bool {
	var diagErr *DiagnosticsError
	return errors.As(err, &diagErr)
}
