package get_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidQuery = "paramètres de recherche invalides"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Параметры: scope (all | arrivals_today | departures_today),
// status, roomId, startDate, endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
		default:
			h.logger.Error("GET /reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.ListReservationsRequest, error) {
	query := r.URL.Query()

	req := &models.ListReservationsRequest{
		Scope: query.Get("scope"),
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if startDate := query.Get("startDate"); startDate != "" {
		req.StartDate = &startDate
	}
	if endDate := query.Get("endDate"); endDate != "" {
		req.EndDate = &endDate
	}
	if roomID := query.Get("roomId"); roomID != "" {
		parsed, err := strconv.ParseInt(roomID, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &parsed
	}

	return req, nil
}
