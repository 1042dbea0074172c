// Package installer installs the runtime and development dependency sets
// with the configured package manager.
package installer
