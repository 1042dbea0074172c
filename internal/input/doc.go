// Package input resolves the project name and the extra package list, either
// from positional arguments or from two sequential terminal prompts.
package input
