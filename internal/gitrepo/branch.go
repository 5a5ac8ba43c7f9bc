package gitrepo

import (
	"fmt"
	"strings"
)

const (
	branchReferencePrefixConstant   = "refs/heads/"
	detachedBranchTemplateConstant  = "DETACHED@%s"
	abbreviatedCommitLengthConstant = 7
)

// BranchReference identifies what HEAD points at: a named branch or a detached commit.
type BranchReference struct {
	name     string
	commitID string
	detached bool
}

// NamedBranch references a branch by name, stripping any refs/heads/ prefix.
func NamedBranch(name string) BranchReference {
	return BranchReference{name: strings.TrimPrefix(name, branchReferencePrefixConstant)}
}

// DetachedBranch references a detached commit by its first seven characters.
func DetachedBranch(commitID string) BranchReference {
	abbreviatedCommitID := commitID
	if len(abbreviatedCommitID) > abbreviatedCommitLengthConstant {
		abbreviatedCommitID = abbreviatedCommitID[:abbreviatedCommitLengthConstant]
	}
	return BranchReference{commitID: abbreviatedCommitID, detached: true}
}

// IsDetached reports whether HEAD points at a commit rather than a branch.
func (reference BranchReference) IsDetached() bool {
	return reference.detached
}

// Name returns the branch name, or an empty string for a detached HEAD.
func (reference BranchReference) Name() string {
	return reference.name
}

// CommitID returns the abbreviated commit id of a detached HEAD.
func (reference BranchReference) CommitID() string {
	return reference.commitID
}

// String renders the branch name, or DETACHED@<id> for a detached HEAD.
func (reference BranchReference) String() string {
	if reference.detached {
		return fmt.Sprintf(detachedBranchTemplateConstant, reference.commitID)
	}
	return reference.name
}
