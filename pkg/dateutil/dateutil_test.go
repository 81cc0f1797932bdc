package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"mês simples", date(2025, time.January, 15), 1, date(2025, time.February, 15)},
		{"vários meses", date(2025, time.January, 15), 5, date(2025, time.June, 15)},
		{"dia 31 para fevereiro", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"dia 31 em ano bissexto", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"dia 31 para mês de 30", date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{"virada de ano", date(2025, time.November, 30), 3, date(2026, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.in, tt.n))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 10, DaysBetween(date(2025, time.March, 1), date(2025, time.March, 11)))
	assert.Equal(t, -3, DaysBetween(date(2025, time.March, 11), date(2025, time.March, 8)))
	assert.Equal(t, 0, DaysBetween(date(2025, time.March, 1), date(2025, time.March, 1)))

	// a hora do dia não influencia a contagem
	a := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, time.July, 9, 17, 42, 3, 100, time.UTC)
	assert.Equal(t, date(2025, time.July, 9), DateOnly(in))
}
