// Package present renders bake plans for people and machines: the
// ingredient table, the timeline with wall-clock end times and a JSON
// document with the same content. The CLI, watch mode and TUI share it.
package present
