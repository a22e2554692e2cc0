package delete_room

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog"
)

const (
	msgInvalidID           = "identifiant de chambre invalide"
	msgRoomNotFound        = "chambre introuvable"
	msgRoomHasReservations = "la chambre a des réservations à venir"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/rooms/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, catalog.ErrRoomHasUpcomingReservations):
			h.logger.Warn("DELETE /rooms/{id} - Room has upcoming reservations: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgRoomHasReservations)
		default:
			h.logger.Error("DELETE /rooms/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
