// Package rewrite overwrites a fixed set of files in a freshly generated Vite
// project with the starter stack's stylesheets, build config, entry point and
// API client. Template bodies are embedded at build time.
//
// Writes are whole-file and not transactional: a failure partway through
// leaves earlier files already rewritten.
package rewrite
