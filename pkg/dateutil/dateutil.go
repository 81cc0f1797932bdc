package dateutil

import (
	"time"
)

// DateOnly remove a componente de hora de um time.Time, preservando a
// localização. Comparações de vencimento são sempre feitas apenas por data.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddMonths soma n meses a uma data. Quando o dia não existe no mês de
// destino (ex.: 31 de janeiro + 1 mês), o resultado é o último dia válido
// do mês de destino, em vez do transbordo do time.AddDate padrão.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddDays soma n dias a uma data
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween retorna o número de dias inteiros de from até to,
// comparando apenas as datas. O resultado é negativo quando to é
// anterior a from.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	g := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(g.Sub(f).Hours() / 24)
}
