package check_out_reservation

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID           = "identifiant de réservation invalide"
	msgReservationNotFound = "réservation introuvable"
	msgNotDepartureDay     = "le départ n'est possible que le jour prévu"
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

// Handle POST /api/v1/reservations/{id}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/checkout - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.CheckOut(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/checkout - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrNotDepartureDay):
			h.logger.Warn("POST /reservations/{id}/checkout - Not departure day: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgNotDepartureDay)
		default:
			h.logger.Error("POST /reservations/{id}/checkout - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/checkout - Checked out: id=%d status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
