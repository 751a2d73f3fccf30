package geocode

// Coordinate is a resolved latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CityRecord is the persisted mapping from a city name to its coordinate.
type CityRecord struct {
	Name       string
	Coordinate Coordinate
}
