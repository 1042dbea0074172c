// Package preflight checks that the tools the bootstrapper shells out to are
// installed and that Node.js is new enough for the Vite generator.
package preflight
