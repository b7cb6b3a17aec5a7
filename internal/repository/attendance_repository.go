package repository

import (
	"context"
	"errors"

	"github.com/attendance-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository определяет интерфейс для работы с отметками
type AttendanceRepository interface {
	UpsertBatch(ctx context.Context, date string, records []domain.AttendanceRecord) error
	Get(ctx context.Context, employeeID int64, date string) (*domain.AttendanceRecord, error)
	ListBetween(ctx context.Context, from, to string, employeeID *int64) ([]domain.AttendanceEntry, error)
	ListByDate(ctx context.Context, date string) ([]domain.AttendanceEntry, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// UpsertBatch записывает отметки за день одной транзакцией.
// Существующая запись для (employee_id, date) заменяется целиком.
func (r *attendanceRepository) UpsertBatch(ctx context.Context, date string, records []domain.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	for i := range records {
		records[i].ID = 0
		records[i].Date = date
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "intime", "notes"}),
		}).Create(&records).Error
	})
}

// Get возвращает отметку сотрудника за день или nil, если её нет
func (r *attendanceRepository) Get(ctx context.Context, employeeID int64, date string) (*domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// ListBetween возвращает отметки за диапазон дат вместе с именами сотрудников,
// отсортированные по имени и дате
func (r *attendanceRepository) ListBetween(ctx context.Context, from, to string, employeeID *int64) ([]domain.AttendanceEntry, error) {
	query := r.joined(ctx).Where("a.date >= ? AND a.date <= ?", from, to)
	if employeeID != nil {
		query = query.Where("a.employee_id = ?", *employeeID)
	}

	var entries []domain.AttendanceEntry
	err := query.
		Order("e.name ASC").
		Order("e.id ASC").
		Order("a.date ASC").
		Scan(&entries).Error
	return entries, err
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]domain.AttendanceEntry, error) {
	var entries []domain.AttendanceEntry
	err := r.joined(ctx).
		Where("a.date = ?", date).
		Order("e.name ASC").
		Order("e.id ASC").
		Scan(&entries).Error
	return entries, err
}

func (r *attendanceRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("attendance AS a").
		Select("a.employee_id, e.name AS employee_name, a.date, a.status, a.intime, a.notes").
		Joins("JOIN employees e ON e.id = a.employee_id")
}
