package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "medi-geo"
	serviceVersion = "1.0.0"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"`    // Response message
	Service string `json:"service" example:"medi-geo"` // Service name
	Version string `json:"version" example:"1.0.0"`    // Service version
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Service: serviceName,
		Version: serviceVersion,
	})
}
