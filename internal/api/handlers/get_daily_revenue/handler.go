package get_daily_revenue

import (
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/statistics/revenue-today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RevenueToday(r.Context())
	if err != nil {
		h.logger.Error("GET /statistics/revenue-today - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
