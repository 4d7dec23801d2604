// Package recordengine implements the plotting surface as an in-memory
// recorder.
//
// Every surface call is captured as an ordered operation; Save exports the
// operation log as JSON. Recorded figures are useful for inspecting what a
// plotting helper drew without rendering anything, and for golden-file
// comparisons of draw sequences.
package recordengine
