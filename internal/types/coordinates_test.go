package types

import "testing"

func TestCoordinate_WithDefaultEllipsoid(t *testing.T) {
	bare := NewCoordinate(52.5, 13.5, nil)
	withDefault := bare.WithDefaultEllipsoid(WGS84)
	if withDefault.Ellipsoid != WGS84 {
		t.Errorf("Ellipsoid = %v, want WGS-84", withDefault.Ellipsoid)
	}
	if bare.Ellipsoid != nil {
		t.Error("WithDefaultEllipsoid modified the receiver")
	}

	explicit := NewCoordinate(52.5, 13.5, GRS80).WithDefaultEllipsoid(WGS84)
	if explicit.Ellipsoid != GRS80 {
		t.Errorf("Ellipsoid = %v, want GRS-80", explicit.Ellipsoid)
	}

	if got := bare.WithDefaultEllipsoid(nil); got.Ellipsoid != nil {
		t.Errorf("Ellipsoid = %v, want nil", got.Ellipsoid)
	}
}

func TestResolvedCoordinate_Feature(t *testing.T) {
	r := &ResolvedCoordinate{
		Input:      "N52.5, E13.5",
		Coordinate: NewCoordinate(52.5, 13.5, WGS84),
		Timezone:   "Europe/Berlin",
		Location:   &LocationInfo{Name: "Berlin", CountryCode: "de"},
	}

	f := r.Feature()

	p := f.Point()
	if p.Lon() != 13.5 || p.Lat() != 52.5 {
		t.Errorf("Point = %v, want [13.5 52.5]", p)
	}

	want := map[string]string{
		"input":       "N52.5, E13.5",
		"ellipsoid":   "WGS-84",
		"timezone":    "Europe/Berlin",
		"name":        "Berlin",
		"countryCode": "de",
	}
	for key, value := range want {
		if got := f.Properties.MustString(key); got != value {
			t.Errorf("Properties[%q] = %q, want %q", key, got, value)
		}
	}
}

func TestResolvedCoordinate_FeatureWithoutMetadata(t *testing.T) {
	r := &ResolvedCoordinate{
		Input:      "52.5, 13.5",
		Coordinate: NewCoordinate(52.5, 13.5, nil),
	}

	f := r.Feature()
	for _, key := range []string{"ellipsoid", "timezone", "name"} {
		if _, ok := f.Properties[key]; ok {
			t.Errorf("Properties[%q] set, want absent", key)
		}
	}
}
