package get_statistics

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reports"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reports/models"
)

const (
	msgMissingPeriod = "les paramètres startDate et endDate sont requis"
	msgInvalidPeriod = "période invalide"
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

// Handle GET /api/v1/statistics?startDate=2006-01-02&endDate=2006-01-02
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.StatisticsRequest{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}
	if req.StartDate == "" || req.EndDate == "" {
		h.logger.Warn("GET /statistics - Missing period parameters")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	result, err := h.service.Summary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /statistics - Invalid period: start=%s end=%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		default:
			h.logger.Error("GET /statistics - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
