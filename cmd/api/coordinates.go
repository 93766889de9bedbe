package main

import (
	"errors"
	"fmt"
	"net/http"

	"medi-geo/internal/coordparse"
	"medi-geo/internal/types"

	"github.com/gin-gonic/gin"
)

const maxBatchSize = 100

// ParseCoordinateInput defines the query parameters for the parse endpoint
type ParseCoordinateInput struct {
	Query     string `form:"q" binding:"required"` // Coordinate text, e.g. "N52.5, E13.5"
	Ellipsoid string `form:"ellipsoid"`            // Optional ellipsoid name, e.g. "WGS-84"
	Format    string `form:"format"`               // json (default) or geojson
}

// ParseCoordinatesRequest is the body of the batch parse endpoint
type ParseCoordinatesRequest struct {
	Inputs    []string `json:"inputs" binding:"required,min=1" example:"N52.5 E13.5"`
	Ellipsoid string   `json:"ellipsoid" example:"WGS-84"`
}

// ParseResult is the outcome for one input of a batch request
type ParseResult struct {
	Result *types.ResolvedCoordinate `json:"result,omitempty"`
	Error  string                    `json:"error,omitempty"`
}

// ParseCoordinatesResponse holds one result per input, in request order
type ParseCoordinatesResponse struct {
	Results []ParseResult `json:"results"`
}

// handleParseCoordinate godoc
// @Summary Parse a coordinate
// @Description Parse free-form coordinate text such as "52.5, 13.5", "N52.5, E13.5" or "40.2S, 35.3485W" into decimal degrees
// @Tags coordinates
// @Produce json
// @Param q query string true "Coordinate text" example(N52.5, E13.5)
// @Param ellipsoid query string false "Reference ellipsoid name" example(WGS-84)
// @Param format query string false "Response format" Enums(json, geojson)
// @Success 200 {object} types.ResolvedCoordinate
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /coordinates/parse [get]
func (app *App) handleParseCoordinate(c *gin.Context) {
	var input ParseCoordinateInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Format != "" && input.Format != "json" && input.Format != "geojson" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format %q", input.Format)})
		return
	}

	ellipsoid, err := app.resolveEllipsoid(input.Ellipsoid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved, err := app.resolve(input.Query, ellipsoid)
	if err != nil {
		if errors.Is(err, coordparse.ErrFormatNotRecognized) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to parse coordinate",
			"input", input.Query,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse coordinate"})
		return
	}

	if input.Format == "geojson" {
		c.JSON(http.StatusOK, resolved.Feature())
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// handleParseCoordinates godoc
// @Summary Parse several coordinates
// @Description Parse a batch of coordinate texts. Inputs that cannot be parsed are reported per item.
// @Tags coordinates
// @Accept json
// @Produce json
// @Param request body ParseCoordinatesRequest true "Coordinate texts"
// @Success 200 {object} ParseCoordinatesResponse
// @Failure 400 {object} map[string]string
// @Router /coordinates/parse [post]
func (app *App) handleParseCoordinates(c *gin.Context) {
	var req ParseCoordinatesRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Inputs) > maxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d inputs per request", maxBatchSize)})
		return
	}

	ellipsoid, err := app.resolveEllipsoid(req.Ellipsoid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := ParseCoordinatesResponse{
		Results: make([]ParseResult, 0, len(req.Inputs)),
	}
	for _, in := range req.Inputs {
		resolved, err := app.resolve(in, ellipsoid)
		if err != nil {
			resp.Results = append(resp.Results, ParseResult{Error: err.Error()})
			continue
		}
		resp.Results = append(resp.Results, ParseResult{Result: resolved})
	}

	c.JSON(http.StatusOK, resp)
}

// resolveEllipsoid maps a requested ellipsoid name to a preset. An empty name
// yields nil so the parser output carries no ellipsoid.
func (app *App) resolveEllipsoid(name string) (*types.Ellipsoid, error) {
	if name == "" {
		return nil, nil
	}
	return types.LookupEllipsoid(name)
}

// resolve parses and enriches one input, then applies the configured default ellipsoid
func (app *App) resolve(input string, ellipsoid *types.Ellipsoid) (*types.ResolvedCoordinate, error) {
	resolved, err := app.locationService.Resolve(input, ellipsoid)
	if err != nil {
		return nil, err
	}
	resolved.Coordinate = resolved.Coordinate.WithDefaultEllipsoid(app.defaultEllipsoid)
	return resolved, nil
}
