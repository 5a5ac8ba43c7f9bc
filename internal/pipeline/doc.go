// Package pipeline loads and validates lunara.yml pipeline configuration.
//
// Parsing and validation are separate steps: Parse applies schema defaults and
// rejects unknown enumerated values, while Configuration.Validate checks the
// invariants the schema cannot express. Failures are reported as
// ErrConfigurationNotFound, ReadError, ParseError, or ValidationError.
package pipeline
