package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"medi-geo/internal/coordparse"
	"medi-geo/internal/location"
	"medi-geo/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fixedTimezone string

func (f fixedTimezone) Lookup(_, _ float64) (string, error) {
	return string(f), nil
}

type failingService struct{}

func (failingService) Resolve(_ string, _ *types.Ellipsoid) (*types.ResolvedCoordinate, error) {
	return nil, errors.New("boom")
}

func testApp(t *testing.T, svc location.Service, defaultEllipsoid *types.Ellipsoid) *App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if svc == nil {
		svc = location.NewLocationService(logger, coordparse.NewParser(), fixedTimezone("Europe/Berlin"), nil)
	}
	return newApp(gin.TestMode, logger, svc, defaultEllipsoid)
}

func doRequest(t *testing.T, app *App, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		byts, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(byts)
	}

	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func parseURL(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "/coordinates/parse?" + q.Encode()
}

func TestPing(t *testing.T) {
	w := doRequest(t, testApp(t, nil, nil), http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp PingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, PingResponse{Message: "pong", Service: serviceName, Version: serviceVersion}, resp)
}

func TestParseCoordinate(t *testing.T) {
	w := doRequest(t, testApp(t, nil, nil), http.MethodGet,
		parseURL(map[string]string{"q": "N52.5, E13.5", "ellipsoid": "grs80"}), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ResolvedCoordinate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "N52.5, E13.5", resp.Input)
	require.Equal(t, 52.5, resp.Coordinate.Latitude)
	require.Equal(t, 13.5, resp.Coordinate.Longitude)
	require.NotNil(t, resp.Coordinate.Ellipsoid)
	require.Equal(t, types.GRS80.Name, resp.Coordinate.Ellipsoid.Name)
	require.Equal(t, "Europe/Berlin", resp.Timezone)
	require.Nil(t, resp.Location)
}

func TestParseCoordinate_DefaultEllipsoid(t *testing.T) {
	app := testApp(t, nil, types.WGS84)

	w := doRequest(t, app, http.MethodGet, parseURL(map[string]string{"q": "52.5, 13.5"}), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ResolvedCoordinate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Coordinate.Ellipsoid)
	require.Equal(t, types.WGS84.Name, resp.Coordinate.Ellipsoid.Name)

	// an explicit ellipsoid wins over the default
	w = doRequest(t, app, http.MethodGet, parseURL(map[string]string{"q": "52.5, 13.5", "ellipsoid": "bessel"}), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, types.Bessel1841.Name, resp.Coordinate.Ellipsoid.Name)
}

func TestParseCoordinate_WithoutEllipsoid(t *testing.T) {
	w := doRequest(t, testApp(t, nil, nil), http.MethodGet, parseURL(map[string]string{"q": "-33.8, 151.2"}), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var raw struct {
		Coordinate map[string]interface{} `json:"coordinate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NotContains(t, raw.Coordinate, "ellipsoid")
	require.Equal(t, -33.8, raw.Coordinate["latitude"])
}

func TestParseCoordinate_GeoJSON(t *testing.T) {
	w := doRequest(t, testApp(t, nil, nil), http.MethodGet,
		parseURL(map[string]string{"q": "40.2S, 35.3485W", "format": "geojson"}), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]interface{} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Feature", resp.Type)
	require.Equal(t, "Point", resp.Geometry.Type)
	require.Equal(t, []float64{-35.3485, -40.2}, resp.Geometry.Coordinates)
	require.Equal(t, "40.2S, 35.3485W", resp.Properties["input"])
}

func TestParseCoordinate_BadRequest(t *testing.T) {
	tests := []struct {
		name        string
		params      map[string]string
		errContains string
	}{
		{
			name:        "missing query",
			params:      map[string]string{},
			errContains: "required",
		},
		{
			name:        "unrecognized format",
			params:      map[string]string{"q": "not a coordinate"},
			errContains: "format of coordinates was not recognized",
		},
		{
			name:        "unknown ellipsoid",
			params:      map[string]string{"q": "52.5, 13.5", "ellipsoid": "mars"},
			errContains: "unknown ellipsoid",
		},
		{
			name:        "unsupported response format",
			params:      map[string]string{"q": "52.5, 13.5", "format": "xml"},
			errContains: "unsupported format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, testApp(t, nil, nil), http.MethodGet, parseURL(tt.params), nil)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["error"], tt.errContains)
		})
	}
}

func TestParseCoordinate_InternalError(t *testing.T) {
	w := doRequest(t, testApp(t, failingService{}, nil), http.MethodGet,
		parseURL(map[string]string{"q": "52.5, 13.5"}), nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, map[string]string{"error": "failed to parse coordinate"}, resp)
}

func TestParseCoordinates(t *testing.T) {
	req := ParseCoordinatesRequest{
		Inputs:    []string{"52.5, 13.5", "not a coordinate", "40.2S, 35.3485W"},
		Ellipsoid: "WGS-84",
	}

	w := doRequest(t, testApp(t, nil, nil), http.MethodPost, "/coordinates/parse", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseCoordinatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)

	require.Empty(t, resp.Results[0].Error)
	require.Equal(t, 52.5, resp.Results[0].Result.Coordinate.Latitude)
	require.Equal(t, "WGS-84", resp.Results[0].Result.Coordinate.Ellipsoid.Name)

	require.Nil(t, resp.Results[1].Result)
	require.Contains(t, resp.Results[1].Error, "not a coordinate")

	require.Equal(t, -40.2, resp.Results[2].Result.Coordinate.Latitude)
	require.Equal(t, -35.3485, resp.Results[2].Result.Coordinate.Longitude)
}

func TestParseCoordinates_BadRequest(t *testing.T) {
	tooMany := make([]string, maxBatchSize+1)
	for i := range tooMany {
		tooMany[i] = "52.5, 13.5"
	}

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "empty inputs", body: ParseCoordinatesRequest{}},
		{name: "too many inputs", body: ParseCoordinatesRequest{Inputs: tooMany}},
		{name: "unknown ellipsoid", body: ParseCoordinatesRequest{Inputs: []string{"52.5, 13.5"}, Ellipsoid: "mars"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, testApp(t, nil, nil), http.MethodPost, "/coordinates/parse", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSwaggerDoc(t *testing.T) {
	w := doRequest(t, testApp(t, nil, nil), http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Medi-Geo API")
	require.Contains(t, w.Body.String(), "/coordinates/parse")
}
