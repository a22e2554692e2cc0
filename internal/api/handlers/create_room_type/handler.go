package create_room_type

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidInput       = "données de type de chambre invalides"
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

// Handle POST /api/v1/room-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRoomTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /room-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateCode):
			h.logger.Warn("POST /room-types - Duplicate code: code=%s", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCode)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /room-types - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /room-types - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /room-types - Room type created: id=%d code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
