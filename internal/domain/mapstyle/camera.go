package mapstyle

// LngLat is a [longitude, latitude] pair.
type LngLat [2]float64

// Camera is the initial view of the map.
type Camera struct {
	StyleURL  string
	Center    LngLat
	Zoom      float64
	Pitch     float64
	Bearing   float64
	Antialias bool
}
