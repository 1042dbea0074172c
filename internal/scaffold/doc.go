// Package scaffold lays down the base Vite project by running the external
// generator, confirms the project directory exists, and reads back the
// generated package.json.
package scaffold
