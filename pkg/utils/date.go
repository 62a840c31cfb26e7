package utils

import "time"

// DateLayout é o formato das chaves de dia do calendário ("YYYY-MM-DD")
const DateLayout = time.DateOnly

// FormatDay formata a data como chave de dia, no fuso horário da própria data
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay retorna a meia-noite do dia de t, no mesmo fuso horário
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// FirstDayOfMonth retorna o primeiro dia do mês de t
func FirstDayOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// DaysBetween conta os dias de calendário entre from e to (inclusive)
func DaysBetween(from, to time.Time) int {
	from = StartOfDay(from)
	to = StartOfDay(to)
	return int(to.Sub(from).Hours()/24+0.5) + 1
}
