package cli

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

const (
	versionCommandNameConstant         = "version"
	versionCommandShortConstant        = "Print version information"
	developmentBuildVersionConstant    = "(devel)"
	versionOutputTemplateConstant      = "%s\n"
	fallbackApplicationVersionConstant = "0.1.0"
	moduleVersionPrefixConstant        = "v"
)

// Version is the release version; release builds set it with -ldflags "-X".
var Version = ""

// VersionResolver reports the version to print.
type VersionResolver func(executionContext context.Context) string

// resolveBuildVersion prefers an ldflags-injected Version, then the module version recorded in the binary.
func resolveBuildVersion(context.Context) string {
	if trimmedVersion := strings.TrimSpace(Version); len(trimmedVersion) > 0 {
		return trimmedVersion
	}
	buildInformation, available := debug.ReadBuildInfo()
	if available && len(buildInformation.Main.Version) > 0 && buildInformation.Main.Version != developmentBuildVersionConstant {
		return strings.TrimPrefix(buildInformation.Main.Version, moduleVersionPrefixConstant)
	}
	return fallbackApplicationVersionConstant
}

// VersionCommandBuilder assembles the version command.
type VersionCommandBuilder struct {
	VersionResolver VersionResolver
}

// Build constructs the version command.
func (builder VersionCommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:   versionCommandNameConstant,
		Short: versionCommandShortConstant,
		Args:  usageArguments(cobra.NoArgs),
		RunE: func(command *cobra.Command, arguments []string) error {
			_, printError := fmt.Fprintf(command.OutOrStdout(), versionOutputTemplateConstant, builder.resolveVersion(command.Context()))
			return printError
		},
	}
}

func (builder VersionCommandBuilder) resolveVersion(executionContext context.Context) string {
	if builder.VersionResolver == nil {
		return resolveBuildVersion(executionContext)
	}
	return builder.VersionResolver(executionContext)
}

// usageArguments reports argument validation failures as usage errors.
func usageArguments(validator cobra.PositionalArgs) cobra.PositionalArgs {
	return func(command *cobra.Command, arguments []string) error {
		if validationError := validator(command, arguments); validationError != nil {
			return usageError(validationError)
		}
		return nil
	}
}
