package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

var ErrOutOfRange = errors.New("coordinate outside of valid latitude/longitude range")

// Service resolves the IANA timezone of a position
type Service interface {
	Lookup(latitude, longitude float64) (string, error)
}

// service wraps a tzf finder
type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the shared timezone service.
// tzf loads its timezone polygons into memory, so the finder is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// Lookup returns names like "Europe/Berlin" or "America/Denver".
// Parsed coordinates are not range checked, so positions outside ±90/±180 are rejected here.
func (s *service) Lookup(latitude, longitude float64) (string, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return "", fmt.Errorf("%w: lat=%f, lon=%f", ErrOutOfRange, latitude, longitude)
	}

	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return name, nil
}
