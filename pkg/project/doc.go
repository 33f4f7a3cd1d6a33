// Package project loads cut-list project files.
//
// A project file is TOML with one [[bar]] table per bar (name, mark or
// mark_number, diameter, rounding, color, centerline points) and an
// optional [render] table carrying the drawing settings. It is the
// standalone stand-in for the host CAD document the renderer would
// otherwise traverse.
package project
