package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/lunara/internal/filesystem"
)

const (
	checkCommandNameConstant            = "check"
	checkCommandShortConstant           = "Run the configured gates"
	runCommandNameConstant              = "run"
	runCommandShortConstant             = "Execute the configured pipeline"
	checkNotImplementedTemplateConstant = "check: gate execution is not implemented yet (configured gates: %s)"
	runNotImplementedMessageConstant    = "run: pipeline execution is not implemented yet"
)

// ErrRunNotImplemented is returned by the run command until pipeline execution exists.
var ErrRunNotImplemented = errors.New(runNotImplementedMessageConstant)

// CheckCommandBuilder assembles the check and run commands.
type CheckCommandBuilder struct {
	FileSystem               filesystem.FileSystem
	WorkingDirectoryProvider filesystem.WorkingDirectoryProvider
}

// BuildCheck constructs the check command. Until gates execute, a loadable
// configuration still reports checks failed.
func (builder CheckCommandBuilder) BuildCheck() *cobra.Command {
	return &cobra.Command{
		Use:   checkCommandNameConstant,
		Short: checkCommandShortConstant,
		Args:  usageArguments(cobra.NoArgs),
		RunE: func(command *cobra.Command, arguments []string) error {
			configurationSource := newPipelineConfigurationSource(builder.FileSystem, builder.WorkingDirectoryProvider)
			configuration, loadError := configurationSource.load(command.Context(), "")
			if loadError != nil {
				return loadError
			}
			return ExitError{
				Code:  ExitCodeChecksFailed,
				Cause: fmt.Errorf(checkNotImplementedTemplateConstant, joinGates(configuration.Pipeline.Gates)),
			}
		},
	}
}

// BuildRun constructs the run command.
func (builder CheckCommandBuilder) BuildRun() *cobra.Command {
	return &cobra.Command{
		Use:   runCommandNameConstant,
		Short: runCommandShortConstant,
		Args:  usageArguments(cobra.NoArgs),
		RunE: func(command *cobra.Command, arguments []string) error {
			return ErrRunNotImplemented
		},
	}
}
