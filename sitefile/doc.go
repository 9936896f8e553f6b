// Package sitefile reads the minimal text format cmd/vorolath accepts
// for a list of input sites: one "x,y" pair per line, blank lines
// ignored, and "//" starting a line comment that runs to end of line.
// It exists only to give the CLI and its tests something to read from
// disk; it is not part of the core diagram algorithm.
package sitefile
