package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/lunara/internal/execshell"
	"github.com/temirov/lunara/internal/filesystem"
	"github.com/temirov/lunara/internal/gitrepo"
	"github.com/temirov/lunara/internal/pipeline"
)

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing filesystem.FileSystem) filesystem.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveWorkingDirectoryProvider returns the provided provider or one backed by os.Getwd.
func ResolveWorkingDirectoryProvider(existing filesystem.WorkingDirectoryProvider) filesystem.WorkingDirectoryProvider {
	if existing != nil {
		return existing
	}
	return filesystem.OSWorkingDirectory
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default
// reporting to observer when one is given.
func ResolveGitExecutor(existing gitrepo.GitExecutor, logger *zap.Logger, observer execshell.CommandEventObserver) (gitrepo.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), observer)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolvePipelineLoader constructs a lunara.yml loader over the supplied filesystem seams.
func ResolvePipelineLoader(fileSystem filesystem.FileSystem, workingDirectoryProvider filesystem.WorkingDirectoryProvider) *pipeline.Loader {
	return pipeline.NewLoader(ResolveFileSystem(fileSystem), ResolveWorkingDirectoryProvider(workingDirectoryProvider))
}
