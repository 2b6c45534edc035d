// Package describe computes descriptive statistics over float64 samples:
// mean, median, mode, population standard deviation, and harmonic mean.
//
// The order-dependent reducers (Median, Mode, Describe) require input
// sorted ascending; Sort provides the canonical ordering. Reducers never
// re-sort or otherwise mutate their input.
package describe
