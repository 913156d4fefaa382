package handlers

import (
	"net/http"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/response"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// Health checks the liveness of the service and its database connectivity.
//
// Endpoint: GET /api/health
// Response: 200 OK when healthy, 503 Service Unavailable when the database
// is unreachable
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "database disconnected")
		return
	}

	response.RespondData(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Version:  h.systemService.CheckVersion(),
	})
}
