package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Registros são gravados em UTC mas o calendário comercial é UTC-3, então os
// limites de dia são deslocados por esse offset fixo.
const DAY_BOUNDARY_OFFSET = 3 * time.Hour

func IsValidDate(dateStr string) bool {
	if dateStr == "" {
		return false
	}

	formats := []string{
		"2006-01-02",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-07:00",
		time.RFC3339,
	}

	for _, format := range formats {
		if _, err := time.Parse(format, dateStr); err == nil {
			return true
		}
	}

	return false
}

func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02",
	}

	for _, format := range formats {
		if parsed, err := time.Parse(format, dateStr); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %s", dateStr)
}

// PeriodStart desloca o instante para o início do dia menos o offset fixo.
func PeriodStart(t time.Time) time.Time {
	t = t.UTC()
	startOfDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return startOfDay.Add(-DAY_BOUNDARY_OFFSET)
}

// PeriodEnd desloca o instante para o fim do dia menos o offset fixo.
func PeriodEnd(t time.Time) time.Time {
	t = t.UTC()
	endOfDay := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return endOfDay.Add(-DAY_BOUNDARY_OFFSET)
}

// PreviousPeriod retorna a mesma janela deslocada um mês para trás, para
// comparações período a período.
func PreviousPeriod(after, before time.Time) (time.Time, time.Time) {
	return after.AddDate(0, -1, 0), before.AddDate(0, -1, 0)
}

// InPeriod testa pertencimento à janela com ambos os limites inclusivos.
func InPeriod(t time.Time, after, before time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(after) && !t.After(before)
}

// ParseGoalPeriod converte um período "MM/YYYY" nos limites do mês.
func ParseGoalPeriod(period string) (time.Time, time.Time, error) {
	parts := strings.Split(period, "/")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("período de meta inválido: %s", period)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("mês inválido no período de meta: %s", period)
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("ano inválido no período de meta: %s", period)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}

// GoalProrationFactor calcula o multiplicador da meta para a janela consultada:
// 1 quando a janela contém todo o período da meta, senão a fração de dias de
// sobreposição sobre o total de dias do período da meta.
func GoalProrationFactor(goalStart, goalEnd, after, before time.Time) float64 {
	if !goalStart.Before(after) && !goalEnd.After(before) {
		return 1
	}

	overlapStart := goalStart
	if after.After(overlapStart) {
		overlapStart = after
	}
	overlapEnd := goalEnd
	if before.Before(overlapEnd) {
		overlapEnd = before
	}

	if overlapEnd.Before(overlapStart) {
		return 0
	}

	overlapDays := overlapEnd.Sub(overlapStart).Hours() / 24
	totalDays := goalEnd.Sub(goalStart).Hours() / 24
	return overlapDays / totalDays
}
