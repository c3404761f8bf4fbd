/*
Package mazefile implements the maze file format: a plain-text,
column-major description of a maze grid with one line per cell:

	<X> <Y> <wallNorth> <wallEast> <wallSouth> <wallWest>

Lines are ordered by column: each column starts at Y=0 and counts up by
one, and columns start at X=0 and count up by one between the last row
of one column and the first row of the next. Columns need not share a
height. The package provides a streaming validator, a parser for files
that passed validation, and a serializer whose output the validator
always accepts.
*/
package mazefile

import "github.com/beka-birhanu/maze-registry/logging"

// Codec validates, loads, and saves maze files. Diagnostics for rejected
// files are emitted through the injected logger rather than returned;
// rejection itself is a normal result, not an error.
type Codec struct {
	logger logging.Logger
}

// New creates a Codec that reports diagnostics through the given logger.
func New(logger logging.Logger) *Codec {
	return &Codec{logger: logger}
}
