package gitrepo

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	gitMetadataEntryNameConstant    = ".git"
	headFileNameConstant            = "HEAD"
	gitDirectoryPrefixConstant      = "gitdir:"
	symbolicReferencePrefixConstant = "ref: "
)

var errMissingGitDirectoryEntry = errors.New(invalidGitFileMessageConstant)

// RepositoryLocation pairs the working tree root with its metadata directory.
// MetadataDirectory differs from Root/.git for linked worktrees and submodules.
type RepositoryLocation struct {
	Root              string
	MetadataDirectory string
}

// RepositoryInfo is the repository enclosing the working directory and its current HEAD.
type RepositoryInfo struct {
	Root   string
	Branch BranchReference
}

// DiscoverRepository walks from startDirectory up to the filesystem root and returns the
// first directory holding a .git entry.
func (inspector *Inspector) DiscoverRepository(startDirectory string) (RepositoryLocation, error) {
	currentDirectory, absoluteError := inspector.fileSystem.Abs(startDirectory)
	if absoluteError != nil {
		return RepositoryLocation{}, RepositoryError{Operation: resolveDirectoryFailureMessageConstant, Cause: absoluteError}
	}

	for {
		metadataEntryPath := filepath.Join(currentDirectory, gitMetadataEntryNameConstant)
		metadataEntryInfo, statError := inspector.fileSystem.Stat(metadataEntryPath)
		if statError == nil {
			if metadataEntryInfo.IsDir() {
				return RepositoryLocation{Root: currentDirectory, MetadataDirectory: metadataEntryPath}, nil
			}
			metadataDirectory, linkError := inspector.followGitFile(currentDirectory, metadataEntryPath)
			if linkError != nil {
				return RepositoryLocation{}, linkError
			}
			return RepositoryLocation{Root: currentDirectory, MetadataDirectory: metadataDirectory}, nil
		}

		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return RepositoryLocation{}, ErrNotRepository
		}
		currentDirectory = parentDirectory
	}
}

// followGitFile resolves the "gitdir: <path>" pointer written for linked worktrees and submodules.
func (inspector *Inspector) followGitFile(repositoryRoot string, gitFilePath string) (string, error) {
	gitFileContent, readError := inspector.fileSystem.ReadFile(gitFilePath)
	if readError != nil {
		return "", RepositoryError{Operation: readGitFileFailureMessageConstant, Cause: readError}
	}

	trimmedContent := strings.TrimSpace(string(gitFileContent))
	if !strings.HasPrefix(trimmedContent, gitDirectoryPrefixConstant) {
		return "", RepositoryError{Operation: readGitFileFailureMessageConstant, Cause: errMissingGitDirectoryEntry}
	}

	metadataDirectory := strings.TrimSpace(strings.TrimPrefix(trimmedContent, gitDirectoryPrefixConstant))
	if !filepath.IsAbs(metadataDirectory) {
		metadataDirectory = filepath.Join(repositoryRoot, metadataDirectory)
	}
	return filepath.Clean(metadataDirectory), nil
}

// RepositoryInfo discovers the repository enclosing the working directory and resolves HEAD.
func (inspector *Inspector) RepositoryInfo() (RepositoryInfo, error) {
	workingDirectory, workingDirectoryError := inspector.workingDirectoryProvider()
	if workingDirectoryError != nil {
		return RepositoryInfo{}, RepositoryError{Operation: resolveDirectoryFailureMessageConstant, Cause: workingDirectoryError}
	}

	location, discoveryError := inspector.DiscoverRepository(workingDirectory)
	if discoveryError != nil {
		return RepositoryInfo{}, discoveryError
	}

	headContent, readError := inspector.fileSystem.ReadFile(filepath.Join(location.MetadataDirectory, headFileNameConstant))
	if readError != nil {
		return RepositoryInfo{}, RepositoryError{Operation: readHeadFailureMessageConstant, Cause: readError}
	}

	return RepositoryInfo{Root: location.Root, Branch: ResolveBranchReference(string(headContent))}, nil
}

// ResolveBranchReference interprets HEAD file content. A symbolic "ref: refs/heads/<name>"
// yields a named branch; anything else is taken as a commit id.
func ResolveBranchReference(headContent string) BranchReference {
	trimmedContent := strings.TrimSpace(headContent)
	if strings.HasPrefix(trimmedContent, symbolicReferencePrefixConstant) {
		return NamedBranch(strings.TrimPrefix(trimmedContent, symbolicReferencePrefixConstant))
	}
	return DetachedBranch(trimmedContent)
}
