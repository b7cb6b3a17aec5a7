package domain_test

import (
	"testing"

	"github.com/attendance-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_DaysInMonth(t *testing.T) {
	tests := []struct {
		period domain.Period
		want   int
	}{
		{domain.Period{Year: 2024, Month: 2}, 29},
		{domain.Period{Year: 2023, Month: 2}, 28},
		{domain.Period{Year: 1900, Month: 2}, 28},
		{domain.Period{Year: 2000, Month: 2}, 29},
		{domain.Period{Year: 2024, Month: 4}, 30},
		{domain.Period{Year: 2024, Month: 12}, 31},
	}

	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.DaysInMonth())
			assert.Len(t, tt.period.Dates(), tt.want)
		})
	}
}

func TestPeriod_DateHelpers(t *testing.T) {
	p := domain.Period{Year: 2024, Month: 2}

	assert.Equal(t, "2024-02-01", p.FirstDate())
	assert.Equal(t, "2024-02-29", p.LastDate())
	assert.Equal(t, "2024-02-09", p.Date(9))
	assert.Equal(t, "2024-02", p.String())
}

func TestParsePeriod(t *testing.T) {
	p, err := domain.ParsePeriod("2024", "2")
	require.NoError(t, err)
	assert.Equal(t, domain.Period{Year: 2024, Month: 2}, p)

	_, err = domain.ParsePeriod("", "2")
	assert.ErrorIs(t, err, domain.ErrMissingPeriod)

	_, err = domain.ParsePeriod("2024", "")
	assert.ErrorIs(t, err, domain.ErrMissingPeriod)

	_, err = domain.ParsePeriod("2024", "13")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = domain.ParsePeriod("abc", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestPeriod_Validate(t *testing.T) {
	assert.ErrorIs(t, domain.Period{}.Validate(), domain.ErrMissingPeriod)
	assert.ErrorIs(t, domain.Period{Year: 2024, Month: 0}.Validate(), domain.ErrInvalidDate)
	assert.ErrorIs(t, domain.Period{Year: 0, Month: 5}.Validate(), domain.ErrInvalidDate)
	assert.NoError(t, domain.Period{Year: 2024, Month: 5}.Validate())
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d)

	for _, bad := range []string{"2023-02-29", "2024-2-1", "2024-02-30", "", "yesterday"} {
		_, err := domain.ParseDate(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, bad)
	}

	p, err := domain.PeriodOf("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, domain.Period{Year: 2024, Month: 2}, p)
}
