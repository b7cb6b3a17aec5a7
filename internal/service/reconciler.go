package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendance-api/internal/domain"
	"github.com/attendance-api/internal/repository"
)

// Reconciler определяет эффективный статус пары (сотрудник, дата)
type Reconciler interface {
	EffectiveStatus(ctx context.Context, date string, employeeID int64) (domain.EffectiveStatus, error)
	EffectiveStatusesForMonth(ctx context.Context, period domain.Period, employeeID *int64) (*MonthStatuses, error)
}

// MonthStatuses - результат пакетного расчёта за месяц.
// Даёт тот же ответ, что и EffectiveStatus для каждой пары по отдельности.
type MonthStatuses struct {
	Period domain.Period
	leaves map[string]string
	byDate map[string]map[int64]domain.Status
}

func newMonthStatuses(period domain.Period, leaves []domain.OfficeLeave, entries []domain.AttendanceEntry) *MonthStatuses {
	m := &MonthStatuses{
		Period: period,
		leaves: make(map[string]string, len(leaves)),
		byDate: make(map[string]map[int64]domain.Status),
	}
	for _, l := range leaves {
		m.leaves[l.Date] = l.Description
	}
	for _, e := range entries {
		day, ok := m.byDate[e.Date]
		if !ok {
			day = make(map[int64]domain.Status)
			m.byDate[e.Date] = day
		}
		day[e.EmployeeID] = e.Status
	}
	return m
}

// Leave сообщает, является ли дата общим выходным, и возвращает его описание
func (m *MonthStatuses) Leave(date string) (string, bool) {
	desc, ok := m.leaves[date]
	return desc, ok
}

// Status возвращает эффективный статус сотрудника за дату
func (m *MonthStatuses) Status(date string, employeeID int64) domain.EffectiveStatus {
	_, isLeave := m.leaves[date]
	var record *domain.Status
	if st, ok := m.byDate[date][employeeID]; ok {
		record = &st
	}
	return domain.Resolve(isLeave, record)
}

// Day считает эффективные статусы всех сотрудников за дату
func (m *MonthStatuses) Day(date string) domain.DaySummary {
	summary := domain.DaySummary{Date: date}
	if desc, ok := m.leaves[date]; ok {
		summary.IsLeave = true
		summary.LeaveDescription = desc
		return summary
	}
	for employeeID := range m.byDate[date] {
		summary.Add(m.Status(date, employeeID))
	}
	return summary
}

type reconciler struct {
	empRepo        repository.EmployeeRepository
	leaveRepo      repository.LeaveRepository
	attendanceRepo repository.AttendanceRepository
}

// NewReconciler создаёт новый экземпляр сервиса
func NewReconciler(
	empRepo repository.EmployeeRepository,
	leaveRepo repository.LeaveRepository,
	attendanceRepo repository.AttendanceRepository,
) Reconciler {
	return &reconciler{
		empRepo:        empRepo,
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (r *reconciler) EffectiveStatus(ctx context.Context, date string, employeeID int64) (domain.EffectiveStatus, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return domain.EffectiveUnrecorded, err
	}

	if _, err := r.empRepo.GetByID(ctx, employeeID); err != nil {
		return domain.EffectiveUnrecorded, err
	}

	isLeave, err := r.isLeave(ctx, date)
	if err != nil {
		return domain.EffectiveUnrecorded, err
	}
	if isLeave {
		return domain.EffectiveLeave, nil
	}

	rec, err := r.attendanceRepo.Get(ctx, employeeID, date)
	if err != nil {
		return domain.EffectiveUnrecorded, fmt.Errorf("load attendance: %w", err)
	}
	if rec == nil {
		return domain.Resolve(false, nil), nil
	}
	return domain.Resolve(false, &rec.Status), nil
}

func (r *reconciler) EffectiveStatusesForMonth(ctx context.Context, period domain.Period, employeeID *int64) (*MonthStatuses, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	if employeeID != nil {
		if _, err := r.empRepo.GetByID(ctx, *employeeID); err != nil {
			return nil, err
		}
	}

	from, to := period.FirstDate(), period.LastDate()

	leaves, err := r.leaveRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load office leaves: %w", err)
	}

	entries, err := r.attendanceRepo.ListBetween(ctx, from, to, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	return newMonthStatuses(period, leaves, entries), nil
}

func (r *reconciler) isLeave(ctx context.Context, date string) (bool, error) {
	_, err := r.leaveRepo.GetByDate(ctx, date)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrLeaveNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("load office leave: %w", err)
	}
}
