package main

import (
	"fmt"
	"log/slog"

	"medi-geo/internal/config"
	"medi-geo/internal/location"
	"medi-geo/internal/providers/openstreetmap"
	"medi-geo/internal/timezone"
	"medi-geo/internal/types"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	locationService  location.Service
	defaultEllipsoid *types.Ellipsoid
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	defaultEllipsoid, err := cfg.DefaultEllipsoid()
	if err != nil {
		return nil, err
	}

	var timezoneProvider location.TimezoneProvider
	if cfg.Location.Timezone {
		svc, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
		timezoneProvider = svc
	}

	var locationProvider location.ReverseGeocodeProvider
	if cfg.Location.ReverseGeocode {
		locationProvider = openstreetmap.NewClientWithBaseURL(cfg.Location.NominatimURL)
	}

	locationSvc := location.NewLocationService(logger, cfg.NewParser(), timezoneProvider, locationProvider)

	app := newApp(cfg.Server.GinMode, logger, locationSvc, defaultEllipsoid)
	logger.Info("application initialized",
		"timezone", cfg.Location.Timezone,
		"reverseGeocode", cfg.Location.ReverseGeocode,
		"wideCardinalLongitude", cfg.Parser.WideCardinalLongitude,
	)

	return app, nil
}

// newApp builds the router around an already constructed location service
func newApp(ginMode string, logger *slog.Logger, locationSvc location.Service, defaultEllipsoid *types.Ellipsoid) *App {
	// Set Gin mode from configuration
	gin.SetMode(ginMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:           router,
		logger:           logger,
		locationService:  locationSvc,
		defaultEllipsoid: defaultEllipsoid,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
