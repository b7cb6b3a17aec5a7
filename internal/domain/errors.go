package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrDuplicateEmployeeName = errors.New("employee with this name already exists")
	ErrEmptyName             = errors.New("employee name is required")
	ErrLeaveNotFound         = errors.New("office leave not found for this date")
	ErrDuplicateLeaveDate    = errors.New("office leave for this date already exists")
	ErrEmptyDescription      = errors.New("office leave description is required")
	ErrInvalidDate           = errors.New("invalid date")
	ErrMissingPeriod         = errors.New("year and month are required")
	ErrInvalidStatus         = errors.New("invalid attendance status")
	ErrInvalidTime           = errors.New("invalid clock-in time, expected HH:MM")
	ErrDateIsOfficeLeave     = errors.New("date is marked as an office leave")
)
