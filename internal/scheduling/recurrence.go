package scheduling

import (
	"fmt"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// RecurrenceRule правило разворачивания повторяющейся серии занятий
type RecurrenceRule struct {
	Pattern  domain.RecurrencePattern
	Interval int       // Положительный множитель: weekly + interval=2 => каждые 2 недели
	Anchor   time.Time // Дата и время первого занятия (wall clock)
	Until    time.Time // Последний допустимый календарный день, включительно
}

// ExpandRecurrence разворачивает правило в упорядоченный список конкретных
// дат занятий. Каждое значение несёт время суток якоря.
//
// Шаг определяется паттерном:
//   - weekly/biweekly/triweekly: interval * 1/2/3 недель;
//   - monthly: interval календарных месяцев с привязкой к дню месяца якоря;
//     если в целевом месяце такого дня нет, берётся последний день месяца
//     (31 января -> 29 февраля в високосный год -> 31 марта).
//
// Фильтр workingDays отбрасывает занятия на нерабочие дни недели, но курсор
// продолжает двигаться дальше. nil означает отсутствие фильтра.
//
// Результат строго возрастает по дате и никогда не выходит за Until.
// Разворачивание длиннее domain.MaxRecurrenceOccurrences шагов прерывается
// с ErrRecurrenceTooLarge.
func ExpandRecurrence(rule RecurrenceRule, workingDays map[time.Weekday]struct{}) ([]time.Time, error) {
	if !rule.Pattern.IsValid() {
		return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidRecurrence, rule.Pattern)
	}
	if rule.Interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidRecurrence, rule.Interval)
	}

	anchorDay := dateOnly(rule.Anchor)
	untilDay := dateOnly(rule.Until)
	if untilDay.Before(anchorDay) {
		return nil, fmt.Errorf("%w: end date %s is before anchor %s",
			ErrInvalidRecurrence,
			untilDay.Format(domain.DateFormat), anchorDay.Format(domain.DateFormat))
	}

	weeks, weekly := rule.Pattern.WeekMultiplier()

	occurrences := make([]time.Time, 0)
	for step := 0; ; step++ {
		var current time.Time
		if weekly {
			current = rule.Anchor.AddDate(0, 0, 7*weeks*rule.Interval*step)
		} else {
			current = addMonthsClamped(rule.Anchor, rule.Interval*step)
		}

		if dateOnly(current).After(untilDay) {
			break
		}

		if step >= domain.MaxRecurrenceOccurrences {
			return nil, fmt.Errorf("%w: more than %d occurrences, shorten the range",
				ErrRecurrenceTooLarge, domain.MaxRecurrenceOccurrences)
		}

		if workingDays == nil {
			occurrences = append(occurrences, current)
		} else if _, ok := workingDays[current.Weekday()]; ok {
			occurrences = append(occurrences, current)
		}
	}

	return occurrences, nil
}

// addMonthsClamped прибавляет months календарных месяцев к anchor, сохраняя
// день месяца якоря. Каждый шаг считается от якоря, а не от предыдущего
// значения, поэтому после короткого месяца день восстанавливается:
// 31 января -> 28/29 февраля -> 31 марта.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	firstOfTarget := time.Date(anchor.Year(), anchor.Month()+time.Month(months), 1,
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())

	day := anchor.Day()
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
}

// daysInMonth возвращает число дней в месяце
func daysInMonth(year int, month time.Month) int {
	// Нулевой день следующего месяца - это последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOnly обнуляет время, оставляя только календарный день
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
