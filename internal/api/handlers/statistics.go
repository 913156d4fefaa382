package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/api/response"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/apperrors"
	"github.com/cryptotracker/Crypto-Trading-Tracker-Backend/internal/service"
)

// StatisticsHandler handles HTTP requests for portfolio statistics.
type StatisticsHandler struct {
	statisticsService *service.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler with the provided service dependency.
func NewStatisticsHandler(statisticsService *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
	}
}

// GetStatistics handles GET requests to compute summary metrics over the
// full ledger. An empty ledger yields all-zero statistics, not an error.
//
// Endpoint: GET /api/statistics
// Response: 200 OK with Statistics in the data field
// Error: 500 Internal Server Error if the ledger cannot be read
func (h *StatisticsHandler) GetStatistics(w http.ResponseWriter, _ *http.Request) {
	statistics, err := h.statisticsService.GetStatistics()
	if err != nil {
		log.Error().Err(err).Msg("calculating statistics failed")
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateStatistics.Error())
		return
	}

	response.RespondData(w, http.StatusOK, statistics)
}
