//go:build !fastmath

package describe

import "github.com/cwbudde/algo-stats/numeric"

// mathSqrt computes sqrt(x) using the Babylonian iteration.
func mathSqrt(x float64) (float64, error) {
	return numeric.Sqrt(x)
}
