package numeric

import (
	"errors"
	"math"
)

// ErrNegativeInput is returned by Sqrt for negative values.
var ErrNegativeInput = errors.New("numeric: square root of negative value")

// sqrtEpsilon is the absolute convergence threshold of the iteration.
const sqrtEpsilon = 1e-6

// Sqrt computes the square root of value with the Babylonian method:
// starting from x = value and y = 1, x is replaced by the average of x
// and y and y by value/x until the two agree within 1e-6. Zero returns
// zero; negative input is rejected. NaN propagates unchanged.
func Sqrt(value float64) (float64, error) {
	if value == 0 {
		return 0, nil
	}
	if value < 0 {
		return 0, ErrNegativeInput
	}

	x, y := value, 1.0
	for math.Abs(x-y) > sqrtEpsilon {
		x = (x + y) / 2
		y = value / x
	}

	return x, nil
}
