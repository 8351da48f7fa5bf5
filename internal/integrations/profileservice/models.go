package profileservice

import (
	"strings"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/scheduling"
)

// WorkingHours настройки рабочего времени тренера из ProfileService
type WorkingHours struct {
	CoachID             int64    `json:"coach_id"`
	StartTime           string   `json:"start_time"` // 12-часовой формат, например "9:00 AM"
	EndTime             string   `json:"end_time"`   // 12-часовой формат, например "6:00 PM"
	SlotIntervalMinutes int      `json:"slot_interval_minutes"`
	WorkingDays         []string `json:"working_days"` // Названия дней недели; пусто = все семь
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// weekdayNames названия дней недели, принимаемые в конфигурации профиля
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ToSchedulingConfig конвертирует ответ сервиса в конфигурацию ядра.
// Неизвестные названия дней отбрасываются, регистр не учитывается.
func (w *WorkingHours) ToSchedulingConfig() scheduling.WorkingHours {
	days := make([]time.Weekday, 0, len(w.WorkingDays))
	for _, name := range w.WorkingDays {
		if day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			days = append(days, day)
		}
	}

	return scheduling.WorkingHours{
		StartTime:           w.StartTime,
		EndTime:             w.EndTime,
		SlotIntervalMinutes: w.SlotIntervalMinutes,
		WorkingDays:         days,
	}
}
