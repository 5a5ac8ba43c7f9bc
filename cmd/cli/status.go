package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/lunara/internal/dependencies"
	"github.com/temirov/lunara/internal/filesystem"
	"github.com/temirov/lunara/internal/gitrepo"
	"github.com/temirov/lunara/internal/pipeline"
)

const (
	statusCommandNameConstant                  = "status"
	statusCommandShortConstant                 = "Show the repository state and the loaded pipeline"
	statusHeaderTemplateConstant               = "lunara %s\n"
	statusConfigurationTemplateConstant        = "config: version %s; languages: %s; gates: %s\n"
	statusConfigurationFailureTemplateConstant = "config: not loaded (%s): %v\n"
	statusRepositoryTemplateConstant           = "repository: %s\n"
	statusBranchTemplateConstant               = "branch: %s\n"
	statusProtectedBranchTemplateConstant      = "branch: %s (protected)\n"
	statusUpstreamTemplateConstant             = "upstream: %s, ahead %d, behind %d\n"
	statusNoUpstreamMessageConstant            = "upstream: none\n"
	statusCountsTemplateConstant               = "changes: %d staged, %d unstaged, %d untracked\n"
	statusConfigurationErrorTemplateConstant   = "config not loaded: %w"
	statusInspectionStartedMessageConstant     = "inspecting repository"
	statusLogFieldRootConstant                 = "repository_root"
)

// StatusConfiguration holds the application settings consumed by the status command.
type StatusConfiguration struct {
	PreciseAheadBehind bool     `mapstructure:"precise_ahead_behind"`
	ProtectedBranches  []string `mapstructure:"protected_branches"`
}

// StatusCommandBuilder assembles the status command.
type StatusCommandBuilder struct {
	LoggerProvider           LoggerProvider
	ConfigurationProvider    func() StatusConfiguration
	CommandEventsObserver    CommandEventsObserverProvider
	VersionResolver          VersionResolver
	GitExecutor              gitrepo.GitExecutor
	FileSystem               filesystem.FileSystem
	WorkingDirectoryProvider filesystem.WorkingDirectoryProvider
}

// Build constructs the status command.
func (builder StatusCommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:   statusCommandNameConstant,
		Short: statusCommandShortConstant,
		Args:  usageArguments(cobra.NoArgs),
		RunE:  builder.run,
	}
}

func (builder StatusCommandBuilder) run(command *cobra.Command, arguments []string) error {
	logger := resolveLogger(builder.LoggerProvider)
	configuration := builder.resolveConfiguration()
	output := command.OutOrStdout()

	versionBuilder := VersionCommandBuilder{VersionResolver: builder.VersionResolver}
	if _, writeError := fmt.Fprintf(output, statusHeaderTemplateConstant, versionBuilder.resolveVersion(command.Context())); writeError != nil {
		return writeError
	}

	configurationSource := newPipelineConfigurationSource(builder.FileSystem, builder.WorkingDirectoryProvider)
	pipelineConfiguration, configurationError := configurationSource.load(command.Context(), "")
	if configurationError != nil {
		if _, writeError := fmt.Fprintf(output, statusConfigurationFailureTemplateConstant, pipeline.ErrorKindOf(configurationError), configurationError); writeError != nil {
			return writeError
		}
	} else if writeError := writeConfigurationSummary(output, pipelineConfiguration); writeError != nil {
		return writeError
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, resolveCommandEventsObserver(builder.CommandEventsObserver))
	if executorError != nil {
		return executorError
	}
	inspector, inspectorError := gitrepo.NewInspector(gitrepo.Dependencies{
		GitExecutor:              gitExecutor,
		FileSystem:               builder.FileSystem,
		WorkingDirectoryProvider: builder.WorkingDirectoryProvider,
	}, gitrepo.Options{SkipPreciseAheadBehind: !configuration.PreciseAheadBehind})
	if inspectorError != nil {
		return inspectorError
	}

	repositoryInfo, repositoryError := inspector.RepositoryInfo()
	if repositoryError != nil {
		return repositoryError
	}
	logger.Debug(statusInspectionStartedMessageConstant, zap.String(statusLogFieldRootConstant, repositoryInfo.Root))

	summary, summaryError := inspector.StatusSummary(command.Context(), repositoryInfo.Root)
	if summaryError != nil {
		return summaryError
	}

	protectedBranch := !repositoryInfo.Branch.IsDetached() &&
		((configurationError == nil && pipelineConfiguration.IsProtectedBranch(repositoryInfo.Branch.Name())) ||
			slices.Contains(configuration.ProtectedBranches, repositoryInfo.Branch.Name()))
	if writeError := writeRepositorySummary(output, repositoryInfo, summary, protectedBranch); writeError != nil {
		return writeError
	}

	if configurationError != nil {
		return fmt.Errorf(statusConfigurationErrorTemplateConstant, configurationError)
	}
	return nil
}

func (builder StatusCommandBuilder) resolveConfiguration() StatusConfiguration {
	if builder.ConfigurationProvider == nil {
		return StatusConfiguration{PreciseAheadBehind: true}
	}
	return builder.ConfigurationProvider()
}

func writeConfigurationSummary(output io.Writer, configuration pipeline.Configuration) error {
	_, writeError := fmt.Fprintf(output, statusConfigurationTemplateConstant, configuration.Version, joinLanguages(configuration.Pipeline.Languages), joinGates(configuration.Pipeline.Gates))
	return writeError
}

func writeRepositorySummary(output io.Writer, repositoryInfo gitrepo.RepositoryInfo, summary gitrepo.StatusSummary, protectedBranch bool) error {
	branchTemplate := statusBranchTemplateConstant
	if protectedBranch {
		branchTemplate = statusProtectedBranchTemplateConstant
	}

	upstreamLine := statusNoUpstreamMessageConstant
	if summary.Upstream.Configured {
		upstreamLine = fmt.Sprintf(statusUpstreamTemplateConstant, summary.Upstream.Name, summary.Upstream.Ahead, summary.Upstream.Behind)
	}

	lines := []string{
		fmt.Sprintf(statusRepositoryTemplateConstant, repositoryInfo.Root),
		fmt.Sprintf(branchTemplate, repositoryInfo.Branch),
		upstreamLine,
		fmt.Sprintf(statusCountsTemplateConstant, summary.Counts.Staged, summary.Counts.Unstaged, summary.Counts.Untracked),
	}
	for _, line := range lines {
		if _, writeError := io.WriteString(output, line); writeError != nil {
			return writeError
		}
	}
	return nil
}
