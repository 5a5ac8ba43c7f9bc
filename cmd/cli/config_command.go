package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/lunara/internal/filesystem"
	"github.com/temirov/lunara/internal/pipeline"
)

const (
	configCommandNameConstant       = "config"
	configCommandShortConstant      = "Inspect the lunara.yml pipeline configuration"
	validateCommandUseConstant      = "validate [path]"
	validateCommandShortConstant    = "Load and validate lunara.yml, or the file at path"
	validateSuccessTemplateConstant = "config valid: version %s; languages: %s; gates: %s\n"
	validateFailureTemplateConstant = "config %s error: %w"
)

// ConfigCommandBuilder assembles the config command group.
type ConfigCommandBuilder struct {
	FileSystem               filesystem.FileSystem
	WorkingDirectoryProvider filesystem.WorkingDirectoryProvider
}

// Build constructs the config command with its validate subcommand.
func (builder ConfigCommandBuilder) Build() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configCommandNameConstant,
		Short: configCommandShortConstant,
		Args:  usageArguments(cobra.NoArgs),
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	configCommand.AddCommand(&cobra.Command{
		Use:   validateCommandUseConstant,
		Short: validateCommandShortConstant,
		Args:  usageArguments(cobra.MaximumNArgs(1)),
		RunE:  builder.runValidate,
	})

	return configCommand
}

func (builder ConfigCommandBuilder) runValidate(command *cobra.Command, arguments []string) error {
	explicitPath := ""
	if len(arguments) > 0 {
		explicitPath = arguments[0]
	}

	configurationSource := newPipelineConfigurationSource(builder.FileSystem, builder.WorkingDirectoryProvider)
	configuration, loadError := configurationSource.load(command.Context(), explicitPath)
	if loadError != nil {
		return fmt.Errorf(validateFailureTemplateConstant, pipeline.ErrorKindOf(loadError), loadError)
	}

	_, printError := fmt.Fprintf(command.OutOrStdout(), validateSuccessTemplateConstant, configuration.Version, joinLanguages(configuration.Pipeline.Languages), joinGates(configuration.Pipeline.Gates))
	return printError
}
