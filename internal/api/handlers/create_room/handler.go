package create_room

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidInput       = "données de chambre invalides"
	msgRoomTypeNotFound   = "type de chambre introuvable"
	msgDuplicateNumber    = "ce numéro de chambre existe déjà"
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomTypeNotFound):
			h.logger.Warn("POST /rooms - Room type not found: type_id=%d", req.RoomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)
		case errors.Is(err, catalog.ErrDuplicateNumber):
			h.logger.Warn("POST /rooms - Duplicate room number: type_id=%d", req.RoomTypeID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateNumber)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /rooms - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: id=%d number=%s", result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
