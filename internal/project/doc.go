// Package project describes the application being bootstrapped: its
// sanitized name and the absolute directory it will live in.
package project
