package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/attendance-api/internal/domain"
	"github.com/attendance-api/internal/dto"
	"github.com/attendance-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// AttendanceHandler обслуживает отметки, сводки, календарь и отчёты
type AttendanceHandler struct {
	responder
	attendanceService service.AttendanceService
	reconciler        service.Reconciler
	aggregator        service.Aggregator
	reportService     service.ReportService
}

func NewAttendanceHandler(
	attendanceService service.AttendanceService,
	reconciler service.Reconciler,
	aggregator service.Aggregator,
	reportService service.ReportService,
	logger *slog.Logger,
) *AttendanceHandler {
	return &AttendanceHandler{
		responder:         newResponder(logger),
		attendanceService: attendanceService,
		reconciler:        reconciler,
		aggregator:        aggregator,
		reportService:     reportService,
	}
}

// List возвращает отметки за месяц с именами сотрудников
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	period, employeeID, ok := h.periodAndFilter(w, r)
	if !ok {
		return
	}

	entries, err := h.attendanceService.List(r.Context(), period, employeeID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toAttendanceResponses(entries))
}

// Save сохраняет отметки за день
func (h *AttendanceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveAttendanceRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.attendanceService.SaveDay(r.Context(), &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.MessageResponse{Message: "Attendance saved successfully"})
}

// Day возвращает сводку дня и отметки сотрудников
func (h *AttendanceHandler) Day(w http.ResponseWriter, r *http.Request) {
	summary, entries, err := h.attendanceService.Day(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.DayResponse{
		Date:             summary.Date,
		Present:          summary.Present,
		Absent:           summary.Absent,
		Permission:       summary.Permission,
		IsLeave:          summary.IsLeave,
		LeaveDescription: summary.LeaveDescription,
		Records:          toAttendanceResponses(entries),
	})
}

// EffectiveStatus возвращает итоговый статус сотрудника за дату
func (h *AttendanceHandler) EffectiveStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	status, err := h.reconciler.EffectiveStatus(r.Context(), date, employeeID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.EffectiveStatusResponse{
		EmployeeID: employeeID,
		Date:       date,
		Status:     string(status),
	})
}

// Summary возвращает сводку за месяц: по одному сотруднику или по всем
func (h *AttendanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	period, employeeID, ok := h.periodAndFilter(w, r)
	if !ok {
		return
	}

	if employeeID != nil {
		summary, err := h.aggregator.SummarizeMonth(r.Context(), period, *employeeID)
		if err != nil {
			h.handleServiceError(w, err)
			return
		}
		h.respondJSON(w, http.StatusOK, summary)
		return
	}

	summaries, err := h.aggregator.SummarizeMonthAll(r.Context(), period)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summaries)
}

// Calendar возвращает счётчики по дням месяца
func (h *AttendanceHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	period, err := h.parsePeriod(r)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	cal, err := h.aggregator.Calendar(r.Context(), period)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, cal)
}

// Report возвращает отчёт по явным отметкам за месяц
func (h *AttendanceHandler) Report(w http.ResponseWriter, r *http.Request) {
	period, employeeID, ok := h.periodAndFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.reportService.Report(r.Context(), period, employeeID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rows)
}

func (h *AttendanceHandler) periodAndFilter(w http.ResponseWriter, r *http.Request) (domain.Period, *int64, bool) {
	period, err := h.parsePeriod(r)
	if err != nil {
		h.handleServiceError(w, err)
		return domain.Period{}, nil, false
	}

	employeeID, err := h.parseEmployeeFilter(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return domain.Period{}, nil, false
	}

	return period, employeeID, true
}
