// Package driving defines the interfaces through which entry points
// (the CLI, a scheduler) drive the core.
package driving
