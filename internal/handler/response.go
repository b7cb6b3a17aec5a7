package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/attendance-api/internal/domain"
	"github.com/attendance-api/internal/dto"
	"github.com/go-playground/validator/v10"
)

// responder - общие методы разбора запросов и записи ответов
type responder struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{
		validator: validator.New(),
		logger:    logger,
	}
}

// decodeAndValidate читает JSON тело и проверяет его по тегам validate
func (h *responder) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}
	return true
}

// parsePeriod читает year и month из строки запроса
func (h *responder) parsePeriod(r *http.Request) (domain.Period, error) {
	q := r.URL.Query()
	return domain.ParsePeriod(q.Get("year"), q.Get("month"))
}

// parseEmployeeFilter читает employee_id; пусто или "all" означает всех сотрудников
func (h *responder) parseEmployeeFilter(r *http.Request) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("employee_id"))
	if raw == "" || raw == "all" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, fmt.Errorf("invalid employee_id %q", raw)
	}
	return &id, nil
}

func (h *responder) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrLeaveNotFound):
		h.respondError(w, http.StatusNotFound, "office leave not found for this date", "")
	case errors.Is(err, domain.ErrDuplicateEmployeeName):
		h.respondError(w, http.StatusConflict, "an employee with this name already exists", "")
	case errors.Is(err, domain.ErrDuplicateLeaveDate):
		h.respondError(w, http.StatusConflict, "a leave for this date already exists", "")
	case errors.Is(err, domain.ErrDateIsOfficeLeave):
		h.respondError(w, http.StatusConflict, "attendance cannot be marked on an office leave", "")
	case errors.Is(err, domain.ErrMissingPeriod):
		h.respondError(w, http.StatusBadRequest, "month and year are required", "")
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyDescription):
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

func toAttendanceResponses(entries []domain.AttendanceEntry) []dto.AttendanceResponse {
	resp := make([]dto.AttendanceResponse, len(entries))
	for i, e := range entries {
		resp[i] = dto.AttendanceResponse{
			EmployeeID: e.EmployeeID,
			Name:       e.EmployeeName,
			Date:       e.Date,
			Status:     string(e.Status),
			InTime:     e.InTime,
			Notes:      e.Notes,
		}
	}
	return resp
}
