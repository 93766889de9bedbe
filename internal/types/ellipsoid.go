package types

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEllipsoid = errors.New("unknown ellipsoid")

// Ellipsoid describes a reference model of the Earth's shape
type Ellipsoid struct {
	Name              string  `json:"name" example:"WGS-84"`
	SemiMajorAxis     float64 `json:"semiMajorAxis" example:"6378137"`
	InverseFlattening float64 `json:"inverseFlattening" example:"298.257223563"`
}

func (e *Ellipsoid) Flattening() float64 {
	return 1 / e.InverseFlattening
}

// SemiMinorAxis returns b = a * (1 - f)
func (e *Ellipsoid) SemiMinorAxis() float64 {
	return e.SemiMajorAxis * (1 - e.Flattening())
}

// Well-known ellipsoids. They are shared by reference and must not be modified.
var (
	WGS84 = &Ellipsoid{
		Name:              "WGS-84",
		SemiMajorAxis:     6378137.0,
		InverseFlattening: 298.257223563,
	}
	GRS80 = &Ellipsoid{
		Name:              "GRS-80",
		SemiMajorAxis:     6378137.0,
		InverseFlattening: 298.257222101,
	}
	Bessel1841 = &Ellipsoid{
		Name:              "Bessel 1841",
		SemiMajorAxis:     6377397.155,
		InverseFlattening: 299.1528128,
	}
	Airy1830 = &Ellipsoid{
		Name:              "Airy 1830",
		SemiMajorAxis:     6377563.396,
		InverseFlattening: 299.3249646,
	}
	Clarke1866 = &Ellipsoid{
		Name:              "Clarke 1866",
		SemiMajorAxis:     6378206.4,
		InverseFlattening: 294.978698214,
	}
	International1924 = &Ellipsoid{
		Name:              "International 1924",
		SemiMajorAxis:     6378388.0,
		InverseFlattening: 297.0,
	}
)

// ellipsoids maps lookup keys (lowercase, punctuation stripped) to presets
var ellipsoids = map[string]*Ellipsoid{
	"wgs84":             WGS84,
	"grs80":             GRS80,
	"bessel":            Bessel1841,
	"bessel1841":        Bessel1841,
	"airy":              Airy1830,
	"airy1830":          Airy1830,
	"clarke1866":        Clarke1866,
	"clrk66":            Clarke1866,
	"international":     International1924,
	"international1924": International1924,
	"hayford":           International1924,
}

// LookupEllipsoid finds a well-known ellipsoid by name. Matching ignores case,
// spaces, dashes and underscores, so "WGS-84", "wgs84" and "WGS 84" are equal.
func LookupEllipsoid(name string) (*Ellipsoid, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	e, ok := ellipsoids[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEllipsoid, name)
	}
	return e, nil
}
