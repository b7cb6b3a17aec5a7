package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendance-api/internal/domain"
	"github.com/attendance-api/internal/dto"
	"github.com/attendance-api/internal/repository"
)

// AttendanceService определяет интерфейс бизнес-логики для отметок
type AttendanceService interface {
	SaveDay(ctx context.Context, req *dto.SaveAttendanceRequest) error
	List(ctx context.Context, period domain.Period, employeeID *int64) ([]domain.AttendanceEntry, error)
	Day(ctx context.Context, date string) (*domain.DaySummary, []domain.AttendanceEntry, error)
}

type attendanceService struct {
	empRepo        repository.EmployeeRepository
	leaveRepo      repository.LeaveRepository
	attendanceRepo repository.AttendanceRepository
	aggregator     Aggregator
}

// NewAttendanceService создаёт новый экземпляр сервиса
func NewAttendanceService(
	empRepo repository.EmployeeRepository,
	leaveRepo repository.LeaveRepository,
	attendanceRepo repository.AttendanceRepository,
	aggregator Aggregator,
) AttendanceService {
	return &attendanceService{
		empRepo:        empRepo,
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		aggregator:     aggregator,
	}
}

// SaveDay сохраняет отметки всех переданных сотрудников за день атомарно
func (s *attendanceService) SaveDay(ctx context.Context, req *dto.SaveAttendanceRequest) error {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return err
	}

	// Отметки на общий выходной запрещены
	_, err = s.leaveRepo.GetByDate(ctx, date)
	switch {
	case err == nil:
		return domain.ErrDateIsOfficeLeave
	case !errors.Is(err, domain.ErrLeaveNotFound):
		return fmt.Errorf("load office leave: %w", err)
	}

	records, ids, err := buildRecords(req.Records)
	if err != nil {
		return err
	}

	// Проверяем, что все сотрудники существуют
	count, err := s.empRepo.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return domain.ErrEmployeeNotFound
	}

	return s.attendanceRepo.UpsertBatch(ctx, date, records)
}

// buildRecords проверяет статусы и чистит поля; при повторе сотрудника побеждает последняя отметка
func buildRecords(entries []dto.AttendanceEntryRequest) ([]domain.AttendanceRecord, []int64, error) {
	records := make([]domain.AttendanceRecord, 0, len(entries))
	ids := make([]int64, 0, len(entries))
	index := make(map[int64]int, len(entries))

	for _, e := range entries {
		status, err := domain.ParseStatus(e.Status)
		if err != nil {
			return nil, nil, err
		}

		inTime, notes, err := domain.NormalizeFields(status, e.InTime, e.Notes)
		if err != nil {
			return nil, nil, err
		}

		rec := domain.AttendanceRecord{
			EmployeeID: e.EmployeeID,
			Status:     status,
			InTime:     inTime,
			Notes:      notes,
		}

		if i, ok := index[e.EmployeeID]; ok {
			records[i] = rec
			continue
		}
		index[e.EmployeeID] = len(records)
		records = append(records, rec)
		ids = append(ids, e.EmployeeID)
	}

	return records, ids, nil
}

func (s *attendanceService) List(ctx context.Context, period domain.Period, employeeID *int64) ([]domain.AttendanceEntry, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListBetween(ctx, period.FirstDate(), period.LastDate(), employeeID)
}

// Day возвращает сводку дня и сохранённые отметки для формы редактирования
func (s *attendanceService) Day(ctx context.Context, date string) (*domain.DaySummary, []domain.AttendanceEntry, error) {
	summary, err := s.aggregator.SummarizeDay(ctx, date)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.attendanceRepo.ListByDate(ctx, summary.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("load attendance: %w", err)
	}

	return summary, entries, nil
}
