package update_room

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody  = "corps de la requête invalide"
	msgInvalidID           = "identifiant de chambre invalide"
	msgInvalidInput        = "données de chambre invalides"
	msgRoomNotFound        = "chambre introuvable"
	msgRoomTypeNotFound    = "type de chambre introuvable"
	msgRoomHasReservations = "la chambre a des réservations à venir"
	msgDuplicateNumber     = "ce numéro de chambre existe déjà"
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

// Handle PUT /api/v1/rooms/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, catalog.ErrRoomTypeNotFound):
			h.logger.Warn("PUT /rooms/{id} - Room type not found: id=%d", id)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)
		case errors.Is(err, catalog.ErrRoomHasUpcomingReservations):
			h.logger.Warn("PUT /rooms/{id} - Room has upcoming reservations: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgRoomHasReservations)
		case errors.Is(err, catalog.ErrDuplicateNumber):
			h.logger.Warn("PUT /rooms/{id} - Duplicate room number: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateNumber)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /rooms/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id} - Room updated: id=%d number=%s", id, result.Number)
	handlers.RespondJSON(w, http.StatusOK, result)
}
