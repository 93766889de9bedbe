// Package coordparse turns free-form coordinate text such as "52.5, 13.5" or
// "N52.5, E13.5" into a types.Coordinate.
package coordparse

import (
	"medi-geo/internal/types"
)

// Parser tries a fixed list of coordinate formats in order, simplest first,
// and returns the first match. A Parser holds no mutable state and is safe
// for concurrent use.
type Parser struct {
	matchers []matcher
}

// Option configures a Parser
type Option func(*Parser)

// WithWideCardinalLongitude lets the cardinal letter format accept longitudes
// with three integer digits, e.g. "40.2S, 135.3485W". Without it that format
// only reads the first two digits of such a longitude.
func WithWideCardinalLongitude() Option {
	return func(p *Parser) {
		p.matchers = []matcher{matchDecimal, cardinalMatcher(wideCardinalPattern)}
	}
}

// NewParser creates a parser with the default format list
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		// A more permissive format could mis-read a string meant for a
		// simpler one, so the simpler format must come first.
		matchers: []matcher{matchDecimal, matchCardinal},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a coordinate from input. The ellipsoid is attached to the result
// as given, nil included. If no format matches, the error is a *FormatError.
func (p *Parser) Parse(input string, ellipsoid *types.Ellipsoid) (types.Coordinate, error) {
	for _, match := range p.matchers {
		if latitude, longitude, ok := match(input); ok {
			return types.NewCoordinate(latitude, longitude, ellipsoid), nil
		}
	}

	return types.Coordinate{}, &FormatError{Input: input}
}

var defaultParser = NewParser()

// Parse reads a coordinate from input using the default parser
func Parse(input string, ellipsoid *types.Ellipsoid) (types.Coordinate, error) {
	return defaultParser.Parse(input, ellipsoid)
}
