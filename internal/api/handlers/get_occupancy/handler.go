package get_occupancy

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

// Handle GET /api/v1/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CurrentOccupancy(r.Context())
	if err != nil {
		h.logger.Error("GET /occupancy - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
