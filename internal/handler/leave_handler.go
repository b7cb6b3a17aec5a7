package handler

import (
	"log/slog"
	"net/http"

	"github.com/attendance-api/internal/dto"
	"github.com/attendance-api/internal/service"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler struct {
	responder
	leaveService service.LeaveService
}

func NewLeaveHandler(leaveService service.LeaveService, logger *slog.Logger) *LeaveHandler {
	return &LeaveHandler{
		responder:    newResponder(logger),
		leaveService: leaveService,
	}
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = dto.LeaveResponse{Date: l.Date, Description: l.Description}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeaveRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	leave, err := h.leaveService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.LeaveResponse{Date: leave.Date, Description: leave.Description})
}

func (h *LeaveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.Delete(r.Context(), chi.URLParam(r, "date")); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
