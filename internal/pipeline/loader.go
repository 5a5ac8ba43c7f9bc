package pipeline

import (
	"path/filepath"

	"github.com/temirov/lunara/internal/filesystem"
)

const (
	// PrimaryFileName is the preferred configuration file name.
	PrimaryFileName = "lunara.yml"
	// AlternateFileName is consulted when PrimaryFileName is absent.
	AlternateFileName = "lunara.yaml"
)

var candidateFileNames = []string{PrimaryFileName, AlternateFileName}

// Loader discovers, reads, parses, and validates pipeline configuration files.
type Loader struct {
	fileSystem               filesystem.FileSystem
	workingDirectoryProvider filesystem.WorkingDirectoryProvider
}

// NewLoader constructs a Loader. Nil collaborators fall back to the operating system.
func NewLoader(fileSystem filesystem.FileSystem, workingDirectoryProvider filesystem.WorkingDirectoryProvider) *Loader {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	if workingDirectoryProvider == nil {
		workingDirectoryProvider = filesystem.OSWorkingDirectory
	}
	return &Loader{fileSystem: fileSystem, workingDirectoryProvider: workingDirectoryProvider}
}

// Discover returns the first candidate configuration file present in directory.
func (loader *Loader) Discover(directory string) (string, bool) {
	for _, candidateFileName := range candidateFileNames {
		candidatePath := filepath.Join(directory, candidateFileName)
		if _, statError := loader.fileSystem.Stat(candidatePath); statError == nil {
			return candidatePath, true
		}
	}
	return "", false
}

// LoadFrom reads, parses, and validates the configuration stored at path.
func (loader *Loader) LoadFrom(path string) (Configuration, error) {
	content, readError := loader.fileSystem.ReadFile(path)
	if readError != nil {
		return Configuration{}, ReadError{Path: path, Cause: readError}
	}

	configuration, parseError := Parse(content)
	if parseError != nil {
		if typedParseError, isParseError := parseError.(ParseError); isParseError {
			typedParseError.Path = path
			return Configuration{}, typedParseError
		}
		return Configuration{}, parseError
	}

	if validationError := configuration.Validate(); validationError != nil {
		return Configuration{}, validationError
	}

	return configuration, nil
}

// Load discovers a configuration file in the working directory and loads it.
func (loader *Loader) Load() (Configuration, error) {
	workingDirectory, workingDirectoryError := loader.workingDirectoryProvider()
	if workingDirectoryError != nil {
		return Configuration{}, ReadError{Path: ".", Cause: workingDirectoryError}
	}

	configurationPath, found := loader.Discover(workingDirectory)
	if !found {
		return Configuration{}, ErrConfigurationNotFound
	}

	return loader.LoadFrom(configurationPath)
}

// Discover checks directory for lunara.yml, then lunara.yaml.
func Discover(directory string) (string, bool) {
	return NewLoader(nil, nil).Discover(directory)
}

// LoadFrom loads the configuration at path using the operating system filesystem.
func LoadFrom(path string) (Configuration, error) {
	return NewLoader(nil, nil).LoadFrom(path)
}

// Load loads the configuration discovered in the process working directory.
func Load() (Configuration, error) {
	return NewLoader(nil, nil).Load()
}
