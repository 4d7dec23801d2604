// Package gonumengine implements the plotting surface on top of
// gonum.org/v1/plot.
//
// The drawing methods are fire-and-forget to mirror the plotting.Axes
// contract; the first error raised by the backend is recorded and returned
// from Save.
package gonumengine
