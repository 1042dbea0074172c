// Package runner executes external programs (the project generator and the
// package manager) synchronously. ExecRunner is the real implementation;
// Recorder captures invocations for tests.
package runner
