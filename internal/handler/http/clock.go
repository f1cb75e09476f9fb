package http

import (
	"encoding/json"
	"net/http"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/horariolabs/fichaje-backend-go/internal/handler/http/response"
)

type ClockHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListMyEvents(w http.ResponseWriter, r *http.Request)
}

type clockHandlerImpl struct {
	eventService clock.EventService
}

func NewClockHandler(eventService clock.EventService) ClockHandler {
	return &clockHandlerImpl{
		eventService: eventService,
	}
}

// Record implements ClockHandler.
func (h *clockHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req clock.RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.eventService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock event recorded successfully", result)
}

// ListMyEvents implements ClockHandler.
func (h *clockHandlerImpl) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	result, err := h.eventService.ListMyEvents(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
