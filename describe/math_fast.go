//go:build fastmath

package describe

import "github.com/meko-christian/algo-approx"

// mathSqrt computes sqrt(x) using fast approximation.
func mathSqrt(x float64) (float64, error) {
	return approx.FastSqrt(x), nil
}
