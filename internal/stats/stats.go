// Package stats holds the small closed-form statistics primitives shared
// by the analysis engine.
package stats

import "math"

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// It returns 0 when fewer than 2 values are given; callers that need an
// error for that case check the length themselves.
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// StdErr returns the standard error of the mean.
func StdErr(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return SampleStdDev(values) / math.Sqrt(float64(len(values)))
}

// EWMA folds values (oldest first) into an exponentially weighted moving
// average with smoothing factor lambda = 2/(window+1), seeded at the first
// observation. The last fold is the value "as of" the newest day.
func EWMA(values []float64, window int) float64 {
	if len(values) == 0 {
		return 0
	}
	lambda := 2.0 / (float64(window) + 1.0)
	avg := values[0]
	for _, v := range values[1:] {
		avg = v*lambda + avg*(1-lambda)
	}
	return avg
}

// Two-sided Student-t critical values by degrees of freedom (index df-1).
// Beyond df 30 the normal approximation is close enough for field use.
var (
	t90 = []float64{
		6.314, 2.920, 2.353, 2.132, 2.015, 1.943, 1.895, 1.860, 1.833, 1.812,
		1.796, 1.782, 1.771, 1.761, 1.753, 1.746, 1.740, 1.734, 1.729, 1.725,
		1.721, 1.717, 1.714, 1.711, 1.708, 1.706, 1.703, 1.701, 1.699, 1.697,
	}
	t95 = []float64{
		12.706, 4.303, 3.182, 2.776, 2.571, 2.447, 2.365, 2.306, 2.262, 2.228,
		2.201, 2.179, 2.160, 2.145, 2.131, 2.120, 2.110, 2.101, 2.093, 2.086,
		2.080, 2.074, 2.069, 2.064, 2.060, 2.056, 2.052, 2.048, 2.045, 2.042,
	}
	t99 = []float64{
		63.657, 9.925, 5.841, 4.604, 4.032, 3.707, 3.499, 3.355, 3.250, 3.169,
		3.106, 3.055, 3.012, 2.977, 2.947, 2.921, 2.898, 2.878, 2.861, 2.845,
		2.831, 2.819, 2.807, 2.797, 2.787, 2.779, 2.771, 2.763, 2.756, 2.750,
	}
)

// CriticalValue returns the two-sided critical multiplier for the given
// confidence level and degrees of freedom. Supported levels are 0.90,
// 0.95 and 0.99; ok is false for anything else.
func CriticalValue(level float64, df int) (float64, bool) {
	var table []float64
	var z float64
	switch level {
	case 0.90:
		table, z = t90, 1.645
	case 0.95:
		table, z = t95, 1.960
	case 0.99:
		table, z = t99, 2.576
	default:
		return 0, false
	}
	if df < 1 {
		return 0, false
	}
	if df <= len(table) {
		return table[df-1], true
	}
	return z, true
}
