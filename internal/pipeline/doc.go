// Package pipeline runs images through the four edge operators and scores
// each result against its source.
//
// Pipeline handles a single image: load via Source, convert to an intensity
// field, run Roberts, Prewitt, Sobel and Frei-Chen, compute the MSE for each,
// and write {base}_{method}.png through Sink. Batch drives a list of images
// through a Pipeline and assembles a report.Report.
//
// # Errors
//
// Per-image failures are *Error values classified by Kind:
//   - KindInputUnavailable: the image could not be loaded
//   - KindShapeMismatch: an operator changed the field shape (a bug)
//   - KindOutputWriteFailure: an edge image could not be written
//
// A save failure does not discard the scores; Batch still reports the rows
// for that image alongside the failure.
package pipeline
