package get_room

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

const (
	msgInvalidID    = "identifiant de chambre invalide"
	msgRoomNotFound = "chambre introuvable"
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

// Handle GET /api/v1/rooms/{id}
// Принимает как внутренний ID, так и номер комнаты вида "CH-STD-01-003"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.RoomResponse
		err    error
	)

	if id, idErr := handlers.PathInt64(r, "id"); idErr == nil {
		result, err = h.service.GetRoom(r.Context(), id)
	} else {
		number, numErr := handlers.PathString(r, "id")
		if numErr != nil {
			h.logger.Warn("GET /rooms/{id} - Invalid id: %v", numErr)
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		result, err = h.service.GetRoomByNumber(r.Context(), number)
	}

	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id} - Not found")
			handlers.RespondNotFound(w, msgRoomNotFound)
		default:
			h.logger.Error("GET /rooms/{id} - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
