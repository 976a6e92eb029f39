// Package cmdcontext describes the context of the command being executed.
package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI launch context.
	Cli CliCtx
}

// CliCtx - CLI launch context.
type CliCtx struct {
	// ConfigPath is the explicit bootstrapp configuration file path.
	ConfigPath string
	// Verbose enables verbose logging and collaborator output.
	Verbose bool
}
