package scheduling

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// WorkingHours настройки рабочего времени тренера
// Снимок read-only, приходит из профиля тренера один раз на решение
type WorkingHours struct {
	StartTime           string // 12-часовая строка, например "9:00 AM"
	EndTime             string // 12-часовая строка, например "6:00 PM"
	SlotIntervalMinutes int    // Шаг слотов в минутах, 0 = дефолтный
	WorkingDays         []time.Weekday
}

// WorkingDaySet возвращает рабочие дни в виде множества.
// Пустой список означает отсутствие фильтра - тренер работает все семь дней.
func (w WorkingHours) WorkingDaySet() map[time.Weekday]struct{} {
	if len(w.WorkingDays) == 0 {
		return nil
	}
	set := make(map[time.Weekday]struct{}, len(w.WorkingDays))
	for _, day := range w.WorkingDays {
		set[day] = struct{}{}
	}
	return set
}

// Slot один доступный для записи слот в рамках дня
type Slot struct {
	Label       string // 12-часовая подпись слота, например "9:00 AM"
	MinuteOfDay int
}

// GenerateSlots генерирует упорядоченный список слотов по настройкам рабочего
// времени. Слоты идут с шагом SlotIntervalMinutes от начала рабочего дня,
// пока начало слота строго меньше конца рабочего дня (конец не включается).
//
// Если StartTime или EndTime не парсятся, возвращается дефолтная сетка:
// почасовые слоты с 9:00 AM до 6:00 PM. Генерация никогда не падает.
// При start >= end возвращается пустой список.
func GenerateSlots(cfg WorkingHours) []Slot {
	interval := cfg.SlotIntervalMinutes
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	startMinute, startErr := ParseClock(cfg.StartTime)
	endMinute, endErr := ParseClock(cfg.EndTime)
	if startErr != nil || endErr != nil {
		startMinute, _ = ParseClock(domain.DefaultWorkStartTime)
		endMinute, _ = ParseClock(domain.DefaultWorkEndTime)
		interval = domain.DefaultSlotIntervalMinutes
	}

	slots := make([]Slot, 0)
	for current := startMinute; current < endMinute; current += interval {
		slots = append(slots, Slot{
			Label:       FormatClock(current),
			MinuteOfDay: current,
		})
	}

	return slots
}
