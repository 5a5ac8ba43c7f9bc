// Package execshell provides structured helpers for invoking external tools.
//
// ShellExecutor wraps a CommandRunner with debug logging and lifecycle
// notifications, OSCommandRunner performs the actual os/exec invocation, and
// CommandMessageFormatter renders human-readable descriptions of the git
// commands lunara runs.
package execshell
