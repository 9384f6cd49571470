// Package imaging provides the numeric core of edge-mse: intensity fields,
// gradient edge operators, normalization and error scoring, plus the image
// decode/encode collaborators around them.
//
// # Fields
//
// All computation happens on Field, a row-major 2-D float64 array. Decoded
// images become intensity fields via ToIntensity; normalized fields become
// 8-bit grayscale images via ToGray8. Pixel (0,0) is the top-left corner, X
// increases rightward and Y increases downward.
//
// # Edge Operators
//
// Four operators are provided, identified by Method:
//   - Roberts: 2x2 diagonal differences
//   - Prewitt: 3x3 derivative with uniform smoothing
//   - Sobel: 3x3 derivative with [1,2,1] smoothing
//   - FreiChen: 3x3 derivative with [1,√2,1] weighting
//
// Every operator convolves with reflect boundary handling and returns a field
// normalized to [0,1] by Normalize.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Operators are pure functions of their
// input field and can run concurrently on the same input; Convolve itself
// splits rows across CPUs.
//
// # Error Handling
//
// MSE returns an error wrapping ErrShapeMismatch when its inputs differ in
// shape. Loader and writer errors wrap the underlying I/O error.
package imaging
