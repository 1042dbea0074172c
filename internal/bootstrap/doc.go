// Package bootstrap runs the end-to-end project setup: reconcile packages,
// generate the base project, install dependencies, rewrite templates. Steps
// run strictly in order and the first failure stops the run.
package bootstrap
