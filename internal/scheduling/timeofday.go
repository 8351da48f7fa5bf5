package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// ParseClock парсит 12-часовую строку времени ("9:00 AM", "2:30 pm") в
// количество минут с начала дня.
//
// Правила нормализации: 12 AM -> 0 минут, 12 PM -> 720 минут, иначе
// hour*60 + minute (+720 для PM). Маркер периода нечувствителен к регистру.
func ParseClock(text string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q, expected H:MM AM/PM", ErrInvalidClockTime, text)
	}

	clock := fields[0]
	period := strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("%w: %q, unknown period marker %q", ErrInvalidClockTime, text, fields[1])
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q, expected H:MM AM/PM", ErrInvalidClockTime, text)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q, hour must be 1-12", ErrInvalidClockTime, text)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q, minute must be 00-59", ErrInvalidClockTime, text)
	}

	// 12 AM это полночь, 12 PM это полдень
	if hour == 12 {
		hour = 0
	}

	minuteOfDay := hour*60 + minute
	if period == "PM" {
		minuteOfDay += 12 * 60
	}

	return minuteOfDay, nil
}

// FormatClock форматирует минуты с начала дня обратно в 12-часовую строку.
// Для всех значений [0, 1440) является точной обратной функцией к ParseClock.
func FormatClock(minuteOfDay int) string {
	m := ((minuteOfDay % MinutesPerDay) + MinutesPerDay) % MinutesPerDay

	hour24 := m / 60
	minute := m % 60

	period := "AM"
	if hour24 >= 12 {
		period = "PM"
	}

	hour := hour24 % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}
