package forecast

// Series is the raw hourly time series returned by the forecast upstream.
//
// Times and Temperatures are parallel sequences; Aggregate tolerates a length mismatch.
type Series struct {
	Latitude     float64
	Longitude    float64
	Timezone     string
	Times        []string
	Temperatures []float64
}

// Sample is a single forecast entry ready for display.
type Sample struct {
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
}
