package create_reservation

import (
	"errors"
	"net/http"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	bookReservation "github.com/ouleymatou/HMS-ReservationService/internal/usecase/book_reservation"
)

const (
	msgInvalidRequestBody       = "corps de la requête invalide"
	msgInvalidDate              = "format de date invalide, attendu YYYY-MM-DD ou RFC 3339"
	msgInvalidInput             = "données de réservation invalides"
	msgRoomNotFound             = "chambre introuvable"
	msgRoomNotBookable          = "la chambre n'est pas disponible à la réservation"
	msgRoomAlreadyBooked        = "la chambre est déjà réservée sur cette période"
	msgArrivalInPast            = "la date d'arrivée est déjà passée"
	msgDepartureBeforeArrival   = "la date de départ doit être postérieure à la date d'arrivée"
	msgPartySizeExceedsCapacity = "le nombre de personnes dépasse la capacité de la chambre"
	msgDepositOutOfRange        = "l'acompte doit être compris entre 30% et 100% du montant total"
)

type Handler struct {
	useCase BookReservationUseCase
	logger  Logger
}

func NewHandler(useCase BookReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookReservation.ErrRoomAlreadyBooked):
			h.logger.Warn("POST /reservations - Room already booked: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomAlreadyBooked)

		case errors.Is(err, bookReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookReservation.ErrRoomNotBookable):
			h.logger.Warn("POST /reservations - Room not bookable: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotBookable)

		case errors.Is(err, bookReservation.ErrArrivalInPast):
			h.logger.Warn("POST /reservations - Arrival in past: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgArrivalInPast)

		case errors.Is(err, bookReservation.ErrDepartureBeforeArrival):
			h.logger.Warn("POST /reservations - Departure before arrival: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgDepartureBeforeArrival)

		case errors.Is(err, bookReservation.ErrPartySizeExceedsCapacity):
			h.logger.Warn("POST /reservations - Party size exceeds capacity: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgPartySizeExceedsCapacity)

		case errors.Is(err, bookReservation.ErrDepositOutOfRange):
			h.logger.Warn("POST /reservations - Deposit out of range: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgDepositOutOfRange)

		case errors.Is(err, bookReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d number=%s", result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
