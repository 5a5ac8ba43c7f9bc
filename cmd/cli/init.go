package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/temirov/lunara/internal/dependencies"
	"github.com/temirov/lunara/internal/filesystem"
	"github.com/temirov/lunara/internal/pipeline"
)

const (
	initCommandNameConstant                   = "init"
	initCommandShortConstant                  = "Write a starter lunara.yml in the working directory"
	initExistingConfigurationTemplateConstant = "%w: %s"
	initConfigurationExistsMessageConstant    = "configuration already exists"
	initWriteFailureTemplateConstant          = "unable to write %s: %w"
	initCreatedTemplateConstant               = "created %s\n"
	initConfigurationFilePermissionsConstant  = 0o644
)

// ErrConfigurationExists indicates init found an existing lunara.yml or lunara.yaml.
var ErrConfigurationExists = errors.New(initConfigurationExistsMessageConstant)

// InitCommandBuilder assembles the init command.
type InitCommandBuilder struct {
	FileSystem               filesystem.FileSystem
	WorkingDirectoryProvider filesystem.WorkingDirectoryProvider
}

// Build constructs the init command.
func (builder InitCommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:   initCommandNameConstant,
		Short: initCommandShortConstant,
		Args:  usageArguments(cobra.NoArgs),
		RunE:  builder.run,
	}
}

func (builder InitCommandBuilder) run(command *cobra.Command, arguments []string) error {
	fileSystem := dependencies.ResolveFileSystem(builder.FileSystem)
	workingDirectory, workingDirectoryError := dependencies.ResolveWorkingDirectoryProvider(builder.WorkingDirectoryProvider)()
	if workingDirectoryError != nil {
		return workingDirectoryError
	}

	loader := dependencies.ResolvePipelineLoader(fileSystem, builder.WorkingDirectoryProvider)
	if existingPath, exists := loader.Discover(workingDirectory); exists {
		return fmt.Errorf(initExistingConfigurationTemplateConstant, ErrConfigurationExists, existingPath)
	}

	content, marshalError := pipeline.DefaultConfiguration().Marshal()
	if marshalError != nil {
		return marshalError
	}

	configurationPath := filepath.Join(workingDirectory, pipeline.PrimaryFileName)
	if writeError := fileSystem.WriteFile(configurationPath, content, initConfigurationFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(initWriteFailureTemplateConstant, configurationPath, writeError)
	}

	_, printError := fmt.Fprintf(command.OutOrStdout(), initCreatedTemplateConstant, pipeline.PrimaryFileName)
	return printError
}
