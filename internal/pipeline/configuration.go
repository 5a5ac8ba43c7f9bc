package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultVersion is the schema version assumed when the document omits one.
	DefaultVersion = "1"
	// DefaultIntentPath is the intent file location assumed when the document omits one.
	DefaultIntentPath = ".lunara/intent.json"

	marshalErrorTemplateConstant       = "failed to encode configuration: %w"
	yamlIndentConstant                 = 2
	defaultProtectedBranchNameConstant = "main"
)

// Configuration is the root of a lunara.yml document.
type Configuration struct {
	Version  string    `yaml:"version"`
	Pipeline Pipeline  `yaml:"pipeline"`
	Policies *Policies `yaml:"policies,omitempty"`
	Intent   Intent    `yaml:"intent"`
}

// Pipeline lists the languages and gates a run covers.
type Pipeline struct {
	Languages []Language `yaml:"languages"`
	Gates     []Gate     `yaml:"gates"`
	Timeouts  *Timeouts  `yaml:"timeouts,omitempty"`
}

// Timeouts bounds step and overall execution time in seconds.
type Timeouts struct {
	PerStepSeconds *uint64 `yaml:"per_step_secs,omitempty"`
	OverallSeconds *uint64 `yaml:"overall_secs,omitempty"`
}

// Policies captures repository rules enforced around a run.
type Policies struct {
	DocsRequired      bool     `yaml:"docs_required"`
	ProtectedBranches []string `yaml:"protected_branches,omitempty"`
}

// Intent locates the intent document consumed by gates.
type Intent struct {
	Path string `yaml:"path"`
}

// configurationDocument mirrors Configuration with a nullable pipeline so a missing section is detectable.
type configurationDocument struct {
	Version  string    `yaml:"version"`
	Pipeline *Pipeline `yaml:"pipeline"`
	Policies *Policies `yaml:"policies"`
	Intent   Intent    `yaml:"intent"`
}

// DefaultConfiguration returns the configuration scaffolded by lunara init.
func DefaultConfiguration() Configuration {
	return Configuration{
		Version: DefaultVersion,
		Pipeline: Pipeline{
			Languages: []Language{LanguageRust},
			Gates:     []Gate{GateBuild, GateLint, GateTest},
		},
		Policies: &Policies{
			DocsRequired:      false,
			ProtectedBranches: []string{defaultProtectedBranchNameConstant},
		},
		Intent: Intent{Path: DefaultIntentPath},
	}
}

// Parse decodes content into a Configuration, applying schema defaults. It does not validate.
func Parse(content []byte) (Configuration, error) {
	document := configurationDocument{
		Version: DefaultVersion,
		Intent:  Intent{Path: DefaultIntentPath},
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	if decodeError := decoder.Decode(&document); decodeError != nil && !errors.Is(decodeError, io.EOF) {
		return Configuration{}, ParseError{Cause: decodeError}
	}

	if document.Pipeline == nil {
		return Configuration{}, ParseError{Cause: fmt.Errorf(missingFieldMessageTemplateConstant, pipelineFieldConstant)}
	}

	return Configuration{
		Version:  document.Version,
		Pipeline: *document.Pipeline,
		Policies: document.Policies,
		Intent:   document.Intent,
	}, nil
}

// Validate checks invariants the schema cannot express. It never mutates the configuration.
func (configuration Configuration) Validate() error {
	if len(configuration.Pipeline.Languages) == 0 {
		return ValidationError{Field: languageFieldConstant, Reason: emptyListReasonConstant}
	}
	if len(configuration.Pipeline.Gates) == 0 {
		return ValidationError{Field: gateFieldConstant, Reason: emptyListReasonConstant}
	}
	return nil
}

// Marshal encodes the configuration as a YAML document.
func (configuration Configuration) Marshal() ([]byte, error) {
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(yamlIndentConstant)
	if encodeError := encoder.Encode(configuration); encodeError != nil {
		return nil, fmt.Errorf(marshalErrorTemplateConstant, encodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return nil, fmt.Errorf(marshalErrorTemplateConstant, closeError)
	}
	return buffer.Bytes(), nil
}

// IsProtectedBranch reports whether branchName is listed in the protected branch policy.
func (configuration Configuration) IsProtectedBranch(branchName string) bool {
	if configuration.Policies == nil {
		return false
	}
	for _, protectedBranch := range configuration.Policies.ProtectedBranches {
		if protectedBranch == branchName {
			return true
		}
	}
	return false
}
