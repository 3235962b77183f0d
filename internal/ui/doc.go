// Package ui provides semantic text formatting for CLI output.
//
// Formatters degrade gracefully when color is disabled (NO_COLOR, dumb
// terminals, piped output): Code, Key and Muted substitute a plain-text
// decoration so meaning survives without color; the other formatters
// return the plain text.
package ui
