package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

const (
	configurationNotFoundMessageConstant  = "no lunara.yml(.yaml) found"
	readErrorTemplateConstant             = "io error: %s: %v"
	parseErrorTemplateConstant            = "yaml parse error: %v"
	parseErrorWithPathTemplateConstant    = "yaml parse error: %s: %v"
	validationErrorTemplateConstant       = "invalid config: %s %s"
	unsupportedValueErrorTemplateConstant = "%s: unknown value %q (expected one of %s)"
	allowedValuesSeparatorConstant        = ", "
	missingFieldMessageTemplateConstant   = "missing field %s"
	emptyListReasonConstant               = "must not be empty"
	pipelineFieldConstant                 = "pipeline"
)

// ErrConfigurationNotFound indicates no candidate configuration file exists in the searched directory.
var ErrConfigurationNotFound = errors.New(configurationNotFoundMessageConstant)

// ErrorKind classifies configuration failures so callers can map them to distinct outcomes.
type ErrorKind string

// Supported error kinds.
const (
	ErrorKindNone     ErrorKind = "none"
	ErrorKindNotFound ErrorKind = "not_found"
	ErrorKindIO       ErrorKind = "io"
	ErrorKindParse    ErrorKind = "parse"
	ErrorKindInvalid  ErrorKind = "invalid"
)

// ReadError reports a failure to read configuration content from disk.
type ReadError struct {
	Path  string
	Cause error
}

// Error describes the read failure.
func (readError ReadError) Error() string {
	return fmt.Sprintf(readErrorTemplateConstant, readError.Path, readError.Cause)
}

// Unwrap exposes the underlying filesystem error.
func (readError ReadError) Unwrap() error {
	return readError.Cause
}

// ParseError reports content that does not match the configuration schema.
type ParseError struct {
	Path  string
	Cause error
}

// Error describes the parse failure.
func (parseError ParseError) Error() string {
	if len(parseError.Path) == 0 {
		return fmt.Sprintf(parseErrorTemplateConstant, parseError.Cause)
	}
	return fmt.Sprintf(parseErrorWithPathTemplateConstant, parseError.Path, parseError.Cause)
}

// Unwrap exposes the decoder error.
func (parseError ParseError) Unwrap() error {
	return parseError.Cause
}

// ValidationError reports a parsed configuration that violates a cross-field invariant.
type ValidationError struct {
	Field  string
	Reason string
}

// Error names the violated field.
func (validationError ValidationError) Error() string {
	return fmt.Sprintf(validationErrorTemplateConstant, validationError.Field, validationError.Reason)
}

// UnsupportedValueError reports an enumerated field holding a value outside its closed set.
type UnsupportedValueError struct {
	Field   string
	Value   string
	Allowed []string
}

// Error lists the accepted values.
func (valueError UnsupportedValueError) Error() string {
	return fmt.Sprintf(unsupportedValueErrorTemplateConstant, valueError.Field, valueError.Value, strings.Join(valueError.Allowed, allowedValuesSeparatorConstant))
}

// ErrorKindOf classifies err. Errors not produced by this package are reported as ErrorKindIO.
func ErrorKindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}
	if errors.Is(err, ErrConfigurationNotFound) {
		return ErrorKindNotFound
	}

	var validationError ValidationError
	if errors.As(err, &validationError) {
		return ErrorKindInvalid
	}

	var parseError ParseError
	if errors.As(err, &parseError) {
		return ErrorKindParse
	}

	var valueError UnsupportedValueError
	if errors.As(err, &valueError) {
		return ErrorKindParse
	}

	return ErrorKindIO
}
