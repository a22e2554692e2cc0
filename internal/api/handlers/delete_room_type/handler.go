package delete_room_type

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog"
)

const (
	msgInvalidID        = "identifiant de type de chambre invalide"
	msgRoomTypeNotFound = "type de chambre introuvable"
	msgRoomTypeInUse    = "des chambres utilisent encore ce type"
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

// Handle DELETE /api/v1/room-types/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /room-types/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteRoomType(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomTypeNotFound):
			h.logger.Warn("DELETE /room-types/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)
		case errors.Is(err, catalog.ErrRoomTypeInUse):
			h.logger.Warn("DELETE /room-types/{id} - Room type still in use: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgRoomTypeInUse)
		default:
			h.logger.Error("DELETE /room-types/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /room-types/{id} - Room type deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
