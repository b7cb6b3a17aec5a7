package domain

import (
	"time"
)

// Employee представляет сотрудника
type Employee struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Attendance []AttendanceRecord `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// AttendanceRecord - отметка сотрудника за один день.
// Пара (EmployeeID, Date) уникальна, повторная запись заменяет предыдущую целиком.
type AttendanceRecord struct {
	ID         int64   `json:"-" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64   `json:"employee_id" gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	Date       string  `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date;index"`
	Status     Status  `json:"status" gorm:"type:varchar(16);not null"`
	InTime     *string `json:"intime" gorm:"column:intime;type:varchar(5)"`
	Notes      *string `json:"notes" gorm:"type:text"`
}

// TableName задаёт имя таблицы для GORM
func (AttendanceRecord) TableName() string {
	return "attendance"
}

// AttendanceEntry - отметка вместе с именем сотрудника (результат JOIN)
type AttendanceEntry struct {
	EmployeeID   int64   `json:"employee_id" gorm:"column:employee_id"`
	EmployeeName string  `json:"name" gorm:"column:employee_name"`
	Date         string  `json:"date" gorm:"column:date"`
	Status       Status  `json:"status" gorm:"column:status"`
	InTime       *string `json:"intime" gorm:"column:intime"`
	Notes        *string `json:"notes" gorm:"column:notes"`
}

// OfficeLeave - общий нерабочий день для всех сотрудников
type OfficeLeave struct {
	Date        string `json:"date" gorm:"type:varchar(10);primaryKey"`
	Description string `json:"description" gorm:"type:text;not null"`
}

// TableName задаёт имя таблицы для GORM
func (OfficeLeave) TableName() string {
	return "office_leaves"
}

// MonthlySummary - агрегированные показатели сотрудника за месяц
type MonthlySummary struct {
	Present           int     `json:"present"`
	Absent            int     `json:"absent"`
	Permission        int     `json:"permission"`
	Leave             int     `json:"leave"`
	PresentPercentage float64 `json:"present_percentage"`
}

// Add учитывает один день с указанным эффективным статусом
func (s *MonthlySummary) Add(status EffectiveStatus) {
	switch status {
	case EffectivePresent:
		s.Present++
	case EffectiveAbsent:
		s.Absent++
	case EffectivePermission:
		s.Permission++
	case EffectiveLeave:
		s.Leave++
	}
}

// Recorded возвращает число дней с явной отметкой (без общих выходных)
func (s *MonthlySummary) Recorded() int {
	return s.Present + s.Absent + s.Permission
}

// ComputePercentage пересчитывает процент присутствия.
// Общие выходные в знаменатель не входят.
func (s *MonthlySummary) ComputePercentage() {
	recorded := s.Recorded()
	if recorded == 0 {
		s.PresentPercentage = 0
		return
	}
	s.PresentPercentage = 100 * float64(s.Present) / float64(recorded)
}

// EmployeeSummary - сводка за месяц с данными сотрудника
type EmployeeSummary struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"name"`
	MonthlySummary
}

// DaySummary - счётчики по всем сотрудникам за один день календаря
type DaySummary struct {
	Date             string `json:"date"`
	Present          int    `json:"present"`
	Absent           int    `json:"absent"`
	Permission       int    `json:"permission"`
	IsLeave          bool   `json:"is_leave"`
	LeaveDescription string `json:"leave_description,omitempty"`
}

// Add учитывает отметку одного сотрудника за день
func (d *DaySummary) Add(status EffectiveStatus) {
	switch status {
	case EffectivePresent:
		d.Present++
	case EffectiveAbsent:
		d.Absent++
	case EffectivePermission:
		d.Permission++
	}
}

// MonthCalendar - данные для сетки календаря за месяц
type MonthCalendar struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Days  []DaySummary `json:"days"`
}

// ReportRow - строка отчёта по сотруднику
type ReportRow struct {
	EmployeeName string `json:"employee_name"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
	Permission   int    `json:"permission"`
}
