// Package core provides the small value types shared by every layer of the
// driver: packed and floating point colors and the 4x4 transform matrix.
//
// Pixel-space positions and sizes use [image.Point] and [image.Rectangle]
// directly. A rectangle with zero or negative width or height is treated as
// degenerate by every draw call that accepts one.
package core
