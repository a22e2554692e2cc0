package check_in_reservation

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID           = "identifiant de réservation invalide"
	msgReservationNotFound = "réservation introuvable"
	msgNotArrivalDay       = "l'enregistrement n'est possible que le jour d'arrivée"
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

// Handle POST /api/v1/reservations/{id}/checkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/checkin - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.CheckIn(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/checkin - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrNotArrivalDay):
			h.logger.Warn("POST /reservations/{id}/checkin - Not arrival day: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgNotArrivalDay)
		default:
			h.logger.Error("POST /reservations/{id}/checkin - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/checkin - Checked in: id=%d status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
