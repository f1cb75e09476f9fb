package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/notice"
	"github.com/horariolabs/fichaje-backend-go/internal/handler/http/response"
)

type NoticeHandler interface {
	Raise(w http.ResponseWriter, r *http.Request)
	Justify(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	ListMyNotices(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
}

type noticeHandlerImpl struct {
	ledgerService notice.LedgerService
}

func NewNoticeHandler(ledgerService notice.LedgerService) NoticeHandler {
	return &noticeHandlerImpl{
		ledgerService: ledgerService,
	}
}

// Raise implements NoticeHandler.
func (h *noticeHandlerImpl) Raise(w http.ResponseWriter, r *http.Request) {
	var req notice.RaiseNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.Raise(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Late notice raised successfully", result)
}

// Justify implements NoticeHandler.
func (h *noticeHandlerImpl) Justify(w http.ResponseWriter, r *http.Request) {
	var req notice.JustifyNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.ledgerService.Justify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Late notice justified successfully", result)
}

// MarkRead implements NoticeHandler.
func (h *noticeHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.ledgerService.MarkRead(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Late notice marked as read", result)
}

// ListMyNotices implements NoticeHandler.
func (h *noticeHandlerImpl) ListMyNotices(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledgerService.ListMyNotices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListForEmployee implements NoticeHandler.
func (h *noticeHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.ledgerService.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
