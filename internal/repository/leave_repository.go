package repository

import (
	"context"
	"errors"

	"github.com/attendance-api/internal/domain"
	"gorm.io/gorm"
)

// LeaveRepository определяет интерфейс для работы с общими выходными
type LeaveRepository interface {
	List(ctx context.Context) ([]domain.OfficeLeave, error)
	ListBetween(ctx context.Context, from, to string) ([]domain.OfficeLeave, error)
	GetByDate(ctx context.Context, date string) (*domain.OfficeLeave, error)
	Create(ctx context.Context, leave *domain.OfficeLeave) error
	Delete(ctx context.Context, date string) error
}

type leaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository создаёт новый экземпляр репозитория
func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) List(ctx context.Context) ([]domain.OfficeLeave, error) {
	var leaves []domain.OfficeLeave
	err := r.db.WithContext(ctx).Order("date ASC").Find(&leaves).Error
	return leaves, err
}

// ListBetween возвращает выходные в диапазоне дат включительно
func (r *leaveRepository) ListBetween(ctx context.Context, from, to string) ([]domain.OfficeLeave, error) {
	var leaves []domain.OfficeLeave
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) GetByDate(ctx context.Context, date string) (*domain.OfficeLeave, error) {
	var leave domain.OfficeLeave
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&leave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) Create(ctx context.Context, leave *domain.OfficeLeave) error {
	err := r.db.WithContext(ctx).Create(leave).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateLeaveDate
	}
	return err
}

func (r *leaveRepository) Delete(ctx context.Context, date string) error {
	result := r.db.WithContext(ctx).Where("date = ?", date).Delete(&domain.OfficeLeave{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLeaveNotFound
	}
	return nil
}
