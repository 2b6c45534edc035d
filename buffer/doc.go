// Package buffer provides a growable float64 container with explicit
// doubling growth, plus a pool for reuse across repeated loads. The
// statistics functions accept raw []float64 slices; Values() bridges a
// Buffer to them.
package buffer
