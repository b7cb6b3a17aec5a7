package service

import (
	"context"
	"errors"
	"strings"

	"github.com/attendance-api/internal/domain"
	"github.com/attendance-api/internal/dto"
	"github.com/attendance-api/internal/repository"
)

// LeaveService определяет интерфейс бизнес-логики для общих выходных
type LeaveService interface {
	List(ctx context.Context) ([]domain.OfficeLeave, error)
	Create(ctx context.Context, req *dto.CreateLeaveRequest) (*domain.OfficeLeave, error)
	Delete(ctx context.Context, date string) error
}

type leaveService struct {
	leaveRepo repository.LeaveRepository
}

// NewLeaveService создаёт новый экземпляр сервиса
func NewLeaveService(leaveRepo repository.LeaveRepository) LeaveService {
	return &leaveService{leaveRepo: leaveRepo}
}

func (s *leaveService) List(ctx context.Context) ([]domain.OfficeLeave, error) {
	return s.leaveRepo.List(ctx)
}

// Create добавляет выходной; существующий выходной на ту же дату не меняется
func (s *leaveService) Create(ctx context.Context, req *dto.CreateLeaveRequest) (*domain.OfficeLeave, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	_, err = s.leaveRepo.GetByDate(ctx, date)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateLeaveDate
	case !errors.Is(err, domain.ErrLeaveNotFound):
		return nil, err
	}

	leave := &domain.OfficeLeave{Date: date, Description: description}
	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return nil, err
	}

	return leave, nil
}

func (s *leaveService) Delete(ctx context.Context, date string) error {
	date, err := domain.ParseDate(date)
	if err != nil {
		return err
	}
	return s.leaveRepo.Delete(ctx, date)
}
