package utils

import (
	"math"
	"strconv"
	"strings"
)

// Рабочее окно, за пределами которого часы не засчитываются
const (
	workDayStartMinutes = 8 * 60  // 08:00
	workDayEndMinutes   = 18 * 60 // 18:00
)

// parseClock разбирает строку HH:MM в минуты от полуночи.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

// ValidHours считает засчитанные часы между входом и выходом,
// обрезая интервал по рабочему окну 08:00-18:00.
// Любая ошибка разбора времени дает 0.0 - контракт наружу никогда
// не возвращает ошибку.
func ValidHours(entry, exit string) float64 {
	entryMin, ok := parseClock(entry)
	if !ok {
		return 0.0
	}
	exitMin, ok := parseClock(exit)
	if !ok {
		return 0.0
	}

	if entryMin < workDayStartMinutes {
		entryMin = workDayStartMinutes
	}
	if exitMin > workDayEndMinutes {
		exitMin = workDayEndMinutes
	}

	if entryMin >= exitMin {
		return 0.0
	}

	hours := float64(exitMin-entryMin) / 60.0
	return math.Round(hours*100) / 100
}
