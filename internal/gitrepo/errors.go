package gitrepo

import (
	"errors"
	"fmt"
)

const (
	notRepositoryMessageConstant             = "not a git repository"
	repositoryErrorTemplateConstant          = "%s: %v"
	gitExecutorMissingMessageConstant        = "git executor not configured"
	readHeadFailureMessageConstant           = "read HEAD"
	readGitFileFailureMessageConstant        = "read .git file"
	invalidGitFileMessageConstant            = "missing gitdir entry"
	resolveDirectoryFailureMessageConstant   = "resolve directory"
	statusCommandFailureMessageConstant      = "git status"
	aheadBehindCommandFailureMessageConstant = "git rev-list"
)

// ErrNotRepository indicates no .git entry exists in the start directory or any of its ancestors.
var ErrNotRepository = errors.New(notRepositoryMessageConstant)

// ErrGitExecutorNotConfigured indicates the inspector was constructed without a git executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// RepositoryError reports any repository failure other than a missing repository:
// unreadable HEAD, git spawn failures, and non-zero git exits.
type RepositoryError struct {
	Operation string
	Cause     error
}

// Error describes the failed operation and its diagnostic.
func (repositoryError RepositoryError) Error() string {
	return fmt.Sprintf(repositoryErrorTemplateConstant, repositoryError.Operation, repositoryError.Cause)
}

// Unwrap exposes the underlying failure.
func (repositoryError RepositoryError) Unwrap() error {
	return repositoryError.Cause
}
