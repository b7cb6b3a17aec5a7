package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status - статус, который можно записать сотруднику за день
type Status string

const (
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusPermission Status = "permission"
)

// ParseStatus проверяет, что значение входит в допустимый набор
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.TrimSpace(s)); st {
	case StatusPresent, StatusAbsent, StatusPermission:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// EffectiveStatus - итоговое состояние пары (сотрудник, дата) после учёта общих выходных.
// Пустое значение означает, что отметки нет.
type EffectiveStatus string

const (
	EffectiveUnrecorded EffectiveStatus = ""
	EffectivePresent    EffectiveStatus = "present"
	EffectiveAbsent     EffectiveStatus = "absent"
	EffectivePermission EffectiveStatus = "permission"
	EffectiveLeave      EffectiveStatus = "leave"
)

// Resolve применяет правило приоритета: общий выходной перекрывает любую отметку.
// record == nil, если отметки за день нет.
func Resolve(isLeave bool, record *Status) EffectiveStatus {
	if isLeave {
		return EffectiveLeave
	}
	if record == nil {
		return EffectiveUnrecorded
	}
	return EffectiveStatus(*record)
}

const clockLayout = "15:04"

// NormalizeFields оставляет intime только для present и notes только для permission.
// Пустые строки превращаются в nil.
func NormalizeFields(status Status, inTime, notes *string) (*string, *string, error) {
	switch status {
	case StatusPresent:
		t := trimmedOrNil(inTime)
		if t != nil {
			parsed, err := time.Parse(clockLayout, *t)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %q", ErrInvalidTime, *t)
			}
			formatted := parsed.Format(clockLayout)
			t = &formatted
		}
		return t, nil, nil
	case StatusPermission:
		return nil, trimmedOrNil(notes), nil
	default:
		return nil, nil, nil
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
