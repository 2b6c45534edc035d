package describe

import (
	"errors"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Sentinel errors for degenerate datasets.
var (
	ErrEmptyDataset = errors.New("describe: dataset is empty")
	ErrZeroValue    = errors.New("describe: zero value in harmonic mean")
)

// Summary holds the descriptive statistics of a dataset.
type Summary struct {
	Size         int
	Mean         float64
	Median       float64
	Mode         float64
	Variance     float64
	StdDev       float64
	HarmonicMean float64
	Min          float64
	Max          float64
}

// Sort orders values ascending in place. NaNs sort before all other
// values, giving a well-defined total order.
func Sort(values []float64) {
	slices.Sort(values)
}

// kahanSum returns the compensated sum of values.
func kahanSum(values []float64) float64 {
	var sum, c float64
	for _, x := range values {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum
}

// Mean returns the arithmetic mean.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}

	return kahanSum(values) / float64(len(values)), nil
}

// Median returns the middle value of sorted input; for an even count it
// averages the two central elements.
func Median(sorted []float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptyDataset
	}

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}

	return sorted[mid], nil
}

// Mode returns the most frequent value of sorted input, found in a single
// pass over adjacent equal runs. When several values share the maximum
// run length, the first one encountered wins.
func Mode(sorted []float64) (float64, error) {
	if len(sorted) == 0 {
		return 0, ErrEmptyDataset
	}

	mode := sorted[0]
	maxRun, run := 1, 1

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		// Strict > keeps the first value to reach the maximum length.
		if run > maxRun {
			maxRun = run
			mode = sorted[i]
		}
	}

	return mode, nil
}

// Variance returns the population variance (divisor n).
func Variance(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}

	mean := kahanSum(values) / float64(len(values))

	dev := make([]float64, len(values))
	for i, x := range values {
		dev[i] = x - mean
	}
	vecmath.MulBlockInPlace(dev, dev)

	return kahanSum(dev) / float64(len(values)), nil
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) (float64, error) {
	v, err := Variance(values)
	if err != nil {
		return 0, err
	}

	return mathSqrt(v)
}

// HarmonicMean returns the count divided by the sum of reciprocals.
// Any element equal to zero yields ErrZeroValue.
func HarmonicMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}

	var sum float64
	for _, x := range values {
		if x == 0 {
			return 0, ErrZeroValue
		}
		sum += 1 / x
	}

	return float64(len(values)) / sum, nil
}

// Min returns the smallest value.
func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}

	min := values[0]
	for _, x := range values[1:] {
		if x < min {
			min = x
		}
	}

	return min, nil
}

// Max returns the largest value.
func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}

	max := values[0]
	for _, x := range values[1:] {
		if x > max {
			max = x
		}
	}

	return max, nil
}

// Describe runs every reducer over sorted input and returns the combined
// Summary. Median and Mode rely on the ordering; the other statistics do
// not. NaN values sort first and propagate NaN through the moment
// statistics; they are not guarded.
func Describe(sorted []float64) (Summary, error) {
	if len(sorted) == 0 {
		return Summary{}, ErrEmptyDataset
	}

	mean, err := Mean(sorted)
	if err != nil {
		return Summary{}, err
	}

	median, err := Median(sorted)
	if err != nil {
		return Summary{}, err
	}

	mode, err := Mode(sorted)
	if err != nil {
		return Summary{}, err
	}

	variance, err := Variance(sorted)
	if err != nil {
		return Summary{}, err
	}

	stddev, err := mathSqrt(variance)
	if err != nil {
		return Summary{}, err
	}

	harmonic, err := HarmonicMean(sorted)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Size:         len(sorted),
		Mean:         mean,
		Median:       median,
		Mode:         mode,
		Variance:     variance,
		StdDev:       stddev,
		HarmonicMean: harmonic,
		Min:          sorted[0],
		Max:          sorted[len(sorted)-1],
	}, nil
}
