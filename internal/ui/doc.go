// Package ui renders git subprocess activity as console log lines.
//
// ConsoleCommandEventLogger observes the shell executor and reports each git
// invocation made while inspecting a repository.
package ui
