// Package analysis holds the numeric transforms applied to parsed training
// logs before charting, plus per-run summary rollups.
package analysis

// MovingAverage returns the trailing moving average of data with the given
// window size (size >= 1). The output has the same length as the input. The
// first size points ramp up with a cumulative mean over however many points
// exist so far; from index size onward each point is the mean of exactly the
// last size values. Computed via prefix sums, one pass.
func MovingAverage(data []float64, size int) []float64 {
	out := make([]float64, len(data))
	var cumsum float64
	for i, v := range data {
		cumsum += v
		out[i] = cumsum / float64(i+1)
	}
	if len(data) < size {
		return out
	}
	// Re-walk the tail with a sliding sum; indices below size keep the
	// cumulative means written above.
	var window float64
	for i := 0; i < size; i++ {
		window += data[i]
	}
	for i := size; i < len(data); i++ {
		window += data[i] - data[i-size]
		out[i] = window / float64(size)
	}
	return out
}
