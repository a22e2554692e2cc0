package update_room_type

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidID          = "identifiant de type de chambre invalide"
	msgInvalidInput       = "données de type de chambre invalides"
	msgRoomTypeNotFound   = "type de chambre introuvable"
	msgDuplicateCode      = "ce code de type de chambre existe déjà"
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

// Handle PUT /api/v1/room-types/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /room-types/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.SaveRoomTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /room-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRoomType(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomTypeNotFound):
			h.logger.Warn("PUT /room-types/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)
		case errors.Is(err, catalog.ErrDuplicateCode):
			h.logger.Warn("PUT /room-types/{id} - Duplicate code: id=%d code=%s", id, req.Code)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCode)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /room-types/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /room-types/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /room-types/{id} - Room type updated: id=%d code=%s", id, result.Code)
	handlers.RespondJSON(w, http.StatusOK, result)
}
