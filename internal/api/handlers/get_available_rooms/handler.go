package get_available_rooms

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/api/handlers"
	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	findAvailableRooms "github.com/ouleymatou/HMS-ReservationService/internal/usecase/find_available_rooms"
)

const (
	msgInvalidQuery = "paramètres de recherche invalides"
)

type Handler struct {
	useCase FindAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
// Параметры: arrival, departure (YYYY-MM-DD или RFC 3339), partySize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
		default:
			h.logger.Error("GET /rooms/available - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*findAvailableRooms.Request, error) {
	query := r.URL.Query()

	arrival, err := parseDateTime(query.Get("arrival"))
	if err != nil {
		return nil, err
	}
	departure, err := parseDateTime(query.Get("departure"))
	if err != nil {
		return nil, err
	}

	partySize := 1
	if raw := query.Get("partySize"); raw != "" {
		partySize, err = strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
	}

	return &findAvailableRooms.Request{
		Arrival:   arrival,
		Departure: departure,
		PartySize: partySize,
	}, nil
}

func parseDateTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse(domain.DateFormat, value)
}
