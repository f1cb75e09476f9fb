package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetResolvedSchedule(w http.ResponseWriter, r *http.Request)
	GetDayFacts(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	factsService attendance.FactsService
}

func NewAttendanceHandler(factsService attendance.FactsService) AttendanceHandler {
	return &attendanceHandlerImpl{
		factsService: factsService,
	}
}

// GetResolvedSchedule implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetResolvedSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := r.URL.Query().Get("date")

	result, err := h.factsService.GetResolvedSchedule(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDayFacts implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDayFacts(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := r.URL.Query().Get("date")

	result, err := h.factsService.GetDayFacts(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
