package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout - формат хранения дат (ISO YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Period - календарный месяц, единица агрегации
type Period struct {
	Year  int
	Month int
}

// ParsePeriod разбирает год и месяц из строк запроса
func ParsePeriod(year, month string) (Period, error) {
	year = strings.TrimSpace(year)
	month = strings.TrimSpace(month)
	if year == "" || month == "" {
		return Period{}, ErrMissingPeriod
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return Period{}, fmt.Errorf("%w: year %q", ErrInvalidDate, year)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Period{}, fmt.Errorf("%w: month %q", ErrInvalidDate, month)
	}

	p := Period{Year: y, Month: m}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// IsZero сообщает, что период не задан
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Validate проверяет, что год и месяц образуют корректный месяц
func (p Period) Validate() error {
	if p.IsZero() {
		return ErrMissingPeriod
	}
	if p.Year < 1 || p.Year > 9999 || p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: %04d-%02d", ErrInvalidDate, p.Year, p.Month)
	}
	return nil
}

// DaysInMonth возвращает число дней месяца по григорианскому календарю
func (p Period) DaysInMonth() int {
	// нулевой день следующего месяца - последний день текущего
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date возвращает дату дня месяца в формате YYYY-MM-DD
func (p Period) Date(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, day)
}

// FirstDate возвращает первую дату месяца
func (p Period) FirstDate() string {
	return p.Date(1)
}

// LastDate возвращает последнюю дату месяца
func (p Period) LastDate() string {
	return p.Date(p.DaysInMonth())
}

// Dates перечисляет все даты месяца по порядку
func (p Period) Dates() []string {
	n := p.DaysInMonth()
	dates := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		dates = append(dates, p.Date(day))
	}
	return dates
}

// String возвращает период в виде YYYY-MM
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// ParseDate проверяет дату YYYY-MM-DD и возвращает её в каноническом виде
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.Format(DateLayout), nil
}

// PeriodOf возвращает месяц, к которому относится дата
func PeriodOf(date string) (Period, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return Period{Year: t.Year(), Month: int(t.Month())}, nil
}
