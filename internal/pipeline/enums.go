package pipeline

import "gopkg.in/yaml.v3"

const (
	languageRustConstant   = "rust"
	languageJSConstant     = "js"
	gateBuildConstant      = "build"
	gateLintConstant       = "lint"
	gateTestConstant       = "test"
	languageFieldConstant  = "pipeline.languages"
	gateFieldConstant      = "pipeline.gates"
	scalarExpectedConstant = "expected a scalar value"
)

// Language enumerates the toolchains a pipeline can target.
type Language string

// Supported languages.
const (
	LanguageRust Language = Language(languageRustConstant)
	LanguageJS   Language = Language(languageJSConstant)
)

// Gate enumerates the check categories a pipeline run must satisfy.
type Gate string

// Supported gates.
const (
	GateBuild Gate = Gate(gateBuildConstant)
	GateLint  Gate = Gate(gateLintConstant)
	GateTest  Gate = Gate(gateTestConstant)
)

var supportedLanguages = []Language{LanguageRust, LanguageJS}

var supportedGates = []Gate{GateBuild, GateLint, GateTest}

// ParseLanguage converts a textual value into a Language. Matching is exact and case-sensitive.
func ParseLanguage(value string) (Language, error) {
	for _, language := range supportedLanguages {
		if string(language) == value {
			return language, nil
		}
	}
	return "", UnsupportedValueError{Field: languageFieldConstant, Value: value, Allowed: languageNames()}
}

// ParseGate converts a textual value into a Gate. Matching is exact and case-sensitive.
func ParseGate(value string) (Gate, error) {
	for _, gate := range supportedGates {
		if string(gate) == value {
			return gate, nil
		}
	}
	return "", UnsupportedValueError{Field: gateFieldConstant, Value: value, Allowed: gateNames()}
}

// UnmarshalYAML rejects values outside the supported language set.
func (language *Language) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return UnsupportedValueError{Field: languageFieldConstant, Value: scalarExpectedConstant, Allowed: languageNames()}
	}
	parsedLanguage, parseError := ParseLanguage(node.Value)
	if parseError != nil {
		return parseError
	}
	*language = parsedLanguage
	return nil
}

// UnmarshalYAML rejects values outside the supported gate set.
func (gate *Gate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return UnsupportedValueError{Field: gateFieldConstant, Value: scalarExpectedConstant, Allowed: gateNames()}
	}
	parsedGate, parseError := ParseGate(node.Value)
	if parseError != nil {
		return parseError
	}
	*gate = parsedGate
	return nil
}

func languageNames() []string {
	names := make([]string, 0, len(supportedLanguages))
	for _, language := range supportedLanguages {
		names = append(names, string(language))
	}
	return names
}

func gateNames() []string {
	names := make([]string, 0, len(supportedGates))
	for _, gate := range supportedGates {
		names = append(names, string(gate))
	}
	return names
}
