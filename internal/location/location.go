package location

import (
	"fmt"
	"log/slog"
	"sync"

	"medi-geo/internal/coordparse"
	"medi-geo/internal/providers/openstreetmap"
	"medi-geo/internal/types"
)

// Service turns coordinate text into a coordinate with location metadata
type Service interface {
	// Resolve parses input and looks up metadata for the parsed position
	Resolve(input string, ellipsoid *types.Ellipsoid) (*types.ResolvedCoordinate, error)
}

// CoordinateParser defines the interface for coordinate text parsers
type CoordinateParser interface {
	Parse(input string, ellipsoid *types.Ellipsoid) (types.Coordinate, error)
}

// TimezoneProvider defines the interface for timezone lookups
type TimezoneProvider interface {
	Lookup(latitude, longitude float64) (string, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	logger           *slog.Logger
	parser           CoordinateParser
	timezoneProvider TimezoneProvider
	locationProvider ReverseGeocodeProvider
}

// NewLocationService creates a location service. A nil provider disables that lookup.
func NewLocationService(
	logger *slog.Logger,
	parser CoordinateParser,
	timezoneProvider TimezoneProvider,
	locationProvider ReverseGeocodeProvider,
) Service {
	return &locationService{
		logger:           logger,
		parser:           parser,
		timezoneProvider: timezoneProvider,
		locationProvider: locationProvider,
	}
}

// Resolve parses input, then runs the enabled lookups in parallel.
// Only parse failures are returned; a failed lookup is logged and its field left empty.
func (s *locationService) Resolve(input string, ellipsoid *types.Ellipsoid) (*types.ResolvedCoordinate, error) {
	coordinate, err := s.parser.Parse(input, ellipsoid)
	if err != nil {
		return nil, err
	}

	var (
		wg           sync.WaitGroup
		timezone     string
		locationResp *openstreetmap.LookupAPIResponse
		timezoneErr  error
		locationErr  error
	)

	if s.timezoneProvider != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timezone, timezoneErr = s.timezoneProvider.Lookup(coordinate.Latitude, coordinate.Longitude)
			if timezoneErr != nil {
				timezoneErr = fmt.Errorf("failed to get timezone: %w", timezoneErr)
			}
		}()
	}

	if s.locationProvider != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locationResp, locationErr = s.locationProvider.Lookup(coordinate.Latitude, coordinate.Longitude)
			if locationErr != nil {
				locationErr = fmt.Errorf("failed to get location: %w", locationErr)
			}
		}()
	}

	wg.Wait()

	resolved := &types.ResolvedCoordinate{
		Input:      input,
		Coordinate: coordinate,
	}

	if timezoneErr != nil {
		s.logger.Warn("timezone lookup failed", "input", input, "error", timezoneErr)
	} else {
		resolved.Timezone = timezone
	}

	if locationErr != nil {
		s.logger.Warn("reverse geocode failed", "input", input, "error", locationErr)
	} else if locationResp != nil {
		resolved.Location = translateLocationInfo(locationResp)
	}

	s.logger.Debug("coordinate resolved",
		"input", input,
		"latitude", coordinate.Latitude,
		"longitude", coordinate.Longitude,
	)

	return resolved, nil
}

// translateLocationInfo converts an OpenStreetMap reverse lookup response to domain LocationInfo type
func translateLocationInfo(resp *openstreetmap.LookupAPIResponse) *types.LocationInfo {
	// Prefer the place name, then the settlement, then the full display name
	name := resp.DisplayName
	for _, candidate := range []string{resp.Address.Village, resp.Address.Town, resp.Address.City, resp.Name} {
		if candidate != "" {
			name = candidate
		}
	}

	return &types.LocationInfo{
		Name:        name,
		County:      resp.Address.County,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}
}

var _ CoordinateParser = (*coordparse.Parser)(nil)
