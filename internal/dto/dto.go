package dto

import (
	"time"
)

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CreateLeaveRequest - запрос на создание общего выходного
type CreateLeaveRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required,min=1,max=500"`
}

// AttendanceEntryRequest - отметка одного сотрудника в запросе сохранения дня
type AttendanceEntryRequest struct {
	EmployeeID int64   `json:"employee_id" validate:"required,min=1"`
	Status     string  `json:"status" validate:"required,oneof=present absent permission"`
	InTime     *string `json:"intime"`
	Notes      *string `json:"notes" validate:"omitempty,max=1000"`
}

// SaveAttendanceRequest - запрос на сохранение отметок за день
type SaveAttendanceRequest struct {
	Date    string                   `json:"date" validate:"required,datetime=2006-01-02"`
	Records []AttendanceEntryRequest `json:"records" validate:"required,dive"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaveResponse - ответ с данными общего выходного
type LeaveResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// AttendanceResponse - отметка с именем сотрудника
type AttendanceResponse struct {
	EmployeeID int64   `json:"employee_id"`
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	InTime     *string `json:"intime"`
	Notes      *string `json:"notes"`
}

// DayResponse - сводка дня вместе с отметками сотрудников
type DayResponse struct {
	Date             string               `json:"date"`
	Present          int                  `json:"present"`
	Absent           int                  `json:"absent"`
	Permission       int                  `json:"permission"`
	IsLeave          bool                 `json:"is_leave"`
	LeaveDescription string               `json:"leave_description,omitempty"`
	Records          []AttendanceResponse `json:"records"`
}

// EffectiveStatusResponse - эффективный статус пары (сотрудник, дата)
type EffectiveStatusResponse struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// MessageResponse - ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
