// Package cli builds the lunara command-line interface: the Cobra command tree,
// application configuration through Viper, zap logging, and the mapping of
// command failures to process exit codes.
package cli
