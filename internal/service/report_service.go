package service

import (
	"context"
	"fmt"

	"github.com/attendance-api/internal/domain"
	"github.com/attendance-api/internal/repository"
)

// ReportService определяет интерфейс построения отчётов
type ReportService interface {
	Report(ctx context.Context, period domain.Period, employeeID *int64) ([]domain.ReportRow, error)
}

type reportService struct {
	attendanceRepo repository.AttendanceRepository
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(attendanceRepo repository.AttendanceRepository) ReportService {
	return &reportService{attendanceRepo: attendanceRepo}
}

// Report группирует явные отметки за месяц по имени сотрудника.
// Общие выходные не учитываются, сотрудники без отметок в отчёт не попадают.
// Неизвестный employeeID даёт пустой отчёт, а не ошибку.
func (s *reportService) Report(ctx context.Context, period domain.Period, employeeID *int64) ([]domain.ReportRow, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.attendanceRepo.ListBetween(ctx, period.FirstDate(), period.LastDate(), employeeID)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	return groupByName(entries), nil
}

// groupByName сохраняет порядок первого появления имени
func groupByName(entries []domain.AttendanceEntry) []domain.ReportRow {
	rows := make([]domain.ReportRow, 0)
	index := make(map[string]int)

	for _, e := range entries {
		i, ok := index[e.EmployeeName]
		if !ok {
			i = len(rows)
			index[e.EmployeeName] = i
			rows = append(rows, domain.ReportRow{EmployeeName: e.EmployeeName})
		}

		switch e.Status {
		case domain.StatusPresent:
			rows[i].Present++
		case domain.StatusAbsent:
			rows[i].Absent++
		case domain.StatusPermission:
			rows[i].Permission++
		}
	}
	return rows
}
