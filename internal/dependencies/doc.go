// Package dependencies fills in default collaborators for lunara commands,
// so tests can inject stubs while production code gets OS-backed implementations.
package dependencies
