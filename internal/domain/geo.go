package domain

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// Valid reports whether the point lies within coordinate bounds.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Place is a geocoded address.
type Place struct {
	Point           Point
	ResolvedAddress string
}

// Route is the driving distance and duration between two addresses.
type Route struct {
	DistanceKm  float64
	DurationMin float64
}
