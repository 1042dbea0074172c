// Package cli defines the Cobra command tree for the kitchensink CLI. The root
// command bootstraps a project; version, config and doctor are subcommands.
// Command implementations delegate to internal packages for the actual work
// and only handle flag parsing, I/O formatting, and user interaction.
package cli
