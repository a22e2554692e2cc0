package get_reservation

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidID           = "identifiant de réservation invalide"
	msgReservationNotFound = "réservation introuvable"
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

// Handle GET /api/v1/reservations/{id}
// Принимает как внутренний ID, так и номер брони вида "RSV-20250601-001"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.ReservationResponse
		err    error
	)

	if id, idErr := handlers.PathInt64(r, "id"); idErr == nil {
		result, err = h.service.GetByID(r.Context(), id)
	} else {
		number, numErr := handlers.PathString(r, "id")
		if numErr != nil {
			h.logger.Warn("GET /reservations/{id} - Invalid id: %v", numErr)
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		result, err = h.service.GetByNumber(r.Context(), number)
	}

	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Not found")
			handlers.RespondNotFound(w, msgReservationNotFound)
		default:
			h.logger.Error("GET /reservations/{id} - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
