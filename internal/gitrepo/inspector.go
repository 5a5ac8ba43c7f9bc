package gitrepo

import (
	"context"
	"strings"

	"github.com/temirov/lunara/internal/execshell"
	"github.com/temirov/lunara/internal/filesystem"
)

const (
	gitStatusSubcommandConstant           = "status"
	gitPorcelainFlagConstant              = "--porcelain"
	gitBranchFlagConstant                 = "--branch"
	gitRevListSubcommandConstant          = "rev-list"
	gitLeftRightFlagConstant              = "--left-right"
	gitCountFlagConstant                  = "--count"
	gitUpstreamRangeConstant              = "HEAD...@{upstream}"
	gitOptionalLocksEnvironmentConstant   = "GIT_OPTIONAL_LOCKS"
	gitOptionalLocksDisabledValueConstant = "0"
)

// GitExecutor runs git commands. *execshell.ShellExecutor satisfies it.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Dependencies enumerates the collaborators of an Inspector. Nil filesystem members default to the OS.
type Dependencies struct {
	GitExecutor              GitExecutor
	FileSystem               filesystem.FileSystem
	WorkingDirectoryProvider filesystem.WorkingDirectoryProvider
}

// Options tunes inspection behaviour.
type Options struct {
	// SkipPreciseAheadBehind keeps the counts reported in the status header instead of running rev-list.
	SkipPreciseAheadBehind bool
}

// Inspector derives repository state from the .git metadata and git porcelain output.
type Inspector struct {
	gitExecutor              GitExecutor
	fileSystem               filesystem.FileSystem
	workingDirectoryProvider filesystem.WorkingDirectoryProvider
	options                  Options
}

// NewInspector constructs an Inspector.
func NewInspector(dependencies Dependencies, options Options) (*Inspector, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}

	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	workingDirectoryProvider := dependencies.WorkingDirectoryProvider
	if workingDirectoryProvider == nil {
		workingDirectoryProvider = filesystem.OSWorkingDirectory
	}

	return &Inspector{
		gitExecutor:              dependencies.GitExecutor,
		fileSystem:               fileSystem,
		workingDirectoryProvider: workingDirectoryProvider,
		options:                  options,
	}, nil
}

// StatusSummary runs `git status --porcelain --branch` in repositoryRoot and parses it.
// When an upstream is configured the header counts are replaced by AheadBehind, unless that fails.
func (inspector *Inspector) StatusSummary(executionContext context.Context, repositoryRoot string) (StatusSummary, error) {
	executionResult, executionError := inspector.gitExecutor.ExecuteGit(executionContext, inspector.readOnlyCommand(repositoryRoot, gitStatusSubcommandConstant, gitPorcelainFlagConstant, gitBranchFlagConstant))
	if executionError != nil {
		return StatusSummary{}, RepositoryError{Operation: statusCommandFailureMessageConstant, Cause: executionError}
	}

	summary := ParseStatus(executionResult.StandardOutput)
	if !summary.Upstream.Configured || inspector.options.SkipPreciseAheadBehind {
		return summary, nil
	}

	ahead, behind, aheadBehindError := inspector.AheadBehind(executionContext, repositoryRoot)
	if aheadBehindError == nil {
		summary.Upstream.Ahead = ahead
		summary.Upstream.Behind = behind
	}
	return summary, nil
}

// AheadBehind counts commits on HEAD missing from its upstream (ahead) and the reverse (behind).
// Unparsable numbers count as zero.
func (inspector *Inspector) AheadBehind(executionContext context.Context, repositoryRoot string) (uint32, uint32, error) {
	executionResult, executionError := inspector.gitExecutor.ExecuteGit(executionContext, inspector.readOnlyCommand(repositoryRoot, gitRevListSubcommandConstant, gitLeftRightFlagConstant, gitCountFlagConstant, gitUpstreamRangeConstant))
	if executionError != nil {
		return 0, 0, RepositoryError{Operation: aheadBehindCommandFailureMessageConstant, Cause: executionError}
	}

	countFields := strings.Fields(executionResult.StandardOutput)
	var ahead, behind uint32
	if len(countFields) > 0 {
		ahead = parseCount(countFields[0])
	}
	if len(countFields) > 1 {
		behind = parseCount(countFields[1])
	}
	return ahead, behind, nil
}

func (inspector *Inspector) readOnlyCommand(repositoryRoot string, arguments ...string) execshell.CommandDetails {
	return execshell.CommandDetails{
		Arguments:            arguments,
		WorkingDirectory:     repositoryRoot,
		EnvironmentVariables: map[string]string{gitOptionalLocksEnvironmentConstant: gitOptionalLocksDisabledValueConstant},
	}
}
