// Package cli defines the Cobra command tree for the ywscaffold CLI. Running
// the root command with no arguments lays the project skeleton down in the
// working directory; subcommands preview the plan and manage settings.
// Commands only handle flags and output and delegate to internal packages.
package cli
