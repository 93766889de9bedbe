package types

import "github.com/paulmach/orb/geojson"

// ResolvedCoordinate is a parsed coordinate together with the metadata
// looked up for it
type ResolvedCoordinate struct {
	Input      string        `json:"input" example:"N52.5, E13.5"`
	Coordinate Coordinate    `json:"coordinate"`
	Timezone   string        `json:"timezone,omitempty" example:"Europe/Berlin"`
	Location   *LocationInfo `json:"location,omitempty"`
}

// Feature converts the resolved coordinate into a GeoJSON point feature
func (r *ResolvedCoordinate) Feature() *geojson.Feature {
	f := geojson.NewFeature(r.Coordinate.Point())
	f.Properties["input"] = r.Input
	if r.Coordinate.Ellipsoid != nil {
		f.Properties["ellipsoid"] = r.Coordinate.Ellipsoid.Name
	}
	if r.Timezone != "" {
		f.Properties["timezone"] = r.Timezone
	}
	if r.Location != nil {
		f.Properties["name"] = r.Location.Name
		if r.Location.CountryCode != "" {
			f.Properties["countryCode"] = r.Location.CountryCode
		}
	}
	return f
}
