package types

import "github.com/paulmach/orb"

// Coordinate is a geographic position in decimal degrees with an optional
// reference ellipsoid. Values are immutable once constructed.
type Coordinate struct {
	Latitude  float64    `json:"latitude" example:"52.5"`
	Longitude float64    `json:"longitude" example:"13.5"`
	Ellipsoid *Ellipsoid `json:"ellipsoid,omitempty"`
}

// NewCoordinate builds a Coordinate. A nil ellipsoid stays nil; callers that
// need a default apply it with WithDefaultEllipsoid.
func NewCoordinate(latitude, longitude float64, ellipsoid *Ellipsoid) Coordinate {
	return Coordinate{
		Latitude:  latitude,
		Longitude: longitude,
		Ellipsoid: ellipsoid,
	}
}

// WithDefaultEllipsoid returns a copy of c carrying def when c has no ellipsoid.
func (c Coordinate) WithDefaultEllipsoid(def *Ellipsoid) Coordinate {
	if c.Ellipsoid != nil {
		return c
	}
	return NewCoordinate(c.Latitude, c.Longitude, def)
}

// Point returns the coordinate in GeoJSON axis order (longitude, latitude).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
