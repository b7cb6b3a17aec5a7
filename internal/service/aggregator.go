package service

import (
	"context"
	"fmt"

	"github.com/attendance-api/internal/domain"
	"github.com/attendance-api/internal/repository"
)

// Aggregator определяет интерфейс расчёта сводок
type Aggregator interface {
	SummarizeMonth(ctx context.Context, period domain.Period, employeeID int64) (*domain.MonthlySummary, error)
	SummarizeMonthAll(ctx context.Context, period domain.Period) ([]domain.EmployeeSummary, error)
	SummarizeDay(ctx context.Context, date string) (*domain.DaySummary, error)
	Calendar(ctx context.Context, period domain.Period) (*domain.MonthCalendar, error)
}

type aggregator struct {
	reconciler Reconciler
	empRepo    repository.EmployeeRepository
}

// NewAggregator создаёт новый экземпляр сервиса
func NewAggregator(reconciler Reconciler, empRepo repository.EmployeeRepository) Aggregator {
	return &aggregator{
		reconciler: reconciler,
		empRepo:    empRepo,
	}
}

func (a *aggregator) SummarizeMonth(ctx context.Context, period domain.Period, employeeID int64) (*domain.MonthlySummary, error) {
	statuses, err := a.reconciler.EffectiveStatusesForMonth(ctx, period, &employeeID)
	if err != nil {
		return nil, err
	}

	summary := summarizeEmployee(statuses, employeeID)
	return &summary, nil
}

// SummarizeMonthAll считает сводки всех сотрудников по одному пакетному расчёту
func (a *aggregator) SummarizeMonthAll(ctx context.Context, period domain.Period) ([]domain.EmployeeSummary, error) {
	statuses, err := a.reconciler.EffectiveStatusesForMonth(ctx, period, nil)
	if err != nil {
		return nil, err
	}

	employees, err := a.empRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	result := make([]domain.EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		result = append(result, domain.EmployeeSummary{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.Name,
			MonthlySummary: summarizeEmployee(statuses, emp.ID),
		})
	}
	return result, nil
}

func (a *aggregator) SummarizeDay(ctx context.Context, date string) (*domain.DaySummary, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	period, err := domain.PeriodOf(date)
	if err != nil {
		return nil, err
	}

	statuses, err := a.reconciler.EffectiveStatusesForMonth(ctx, period, nil)
	if err != nil {
		return nil, err
	}

	summary := statuses.Day(date)
	return &summary, nil
}

func (a *aggregator) Calendar(ctx context.Context, period domain.Period) (*domain.MonthCalendar, error) {
	statuses, err := a.reconciler.EffectiveStatusesForMonth(ctx, period, nil)
	if err != nil {
		return nil, err
	}

	cal := &domain.MonthCalendar{
		Year:  period.Year,
		Month: period.Month,
		Days:  make([]domain.DaySummary, 0, period.DaysInMonth()),
	}
	for _, date := range period.Dates() {
		cal.Days = append(cal.Days, statuses.Day(date))
	}
	return cal, nil
}

// summarizeEmployee проходит по всем дням месяца; дни без отметки не учитываются
func summarizeEmployee(statuses *MonthStatuses, employeeID int64) domain.MonthlySummary {
	var summary domain.MonthlySummary
	for _, date := range statuses.Period.Dates() {
		summary.Add(statuses.Status(date, employeeID))
	}
	summary.ComputePercentage()
	return summary
}

