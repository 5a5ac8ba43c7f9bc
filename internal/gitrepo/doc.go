// Package gitrepo reports the state of the git repository enclosing a directory.
//
// Discovery and branch resolution read the .git metadata directly. Working tree
// counts and upstream tracking come from `git status --porcelain --branch`,
// interpreted by the pure ParseStatus, with ahead/behind refined through
// `git rev-list --left-right --count`.
package gitrepo
