package forecast

import "strconv"

// Aggregate pairs each timestamp with its temperature in upstream order.
// When the sequences differ in length the tail of the longer one is dropped.
func Aggregate(series Series) []Sample {
	n := len(series.Times)
	if len(series.Temperatures) < n {
		n = len(series.Temperatures)
	}

	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, Sample{
			Date:        series.Times[i],
			Temperature: FormatTemperature(series.Temperatures[i]),
		})
	}
	return samples
}

// FormatTemperature renders a temperature as the shortest decimal that round-trips.
func FormatTemperature(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
