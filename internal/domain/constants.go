package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes   = 60
	DefaultLessonDurationMinutes = 60

	// Fallback рабочие часы: применяются, если настройки тренера не парсятся
	DefaultWorkStartTime = "9:00 AM"
	DefaultWorkEndTime   = "6:00 PM"
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 480 // 8 часов

	// MaxRecurrenceOccurrences предохранитель от вырожденных правил повторения
	MaxRecurrenceOccurrences = 500

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных занятий
// Используется для фильтрации при проверке доступности слотов
var InactiveStatuses = []LessonStatus{
	StatusCancelledByClient,
	StatusCancelledByCoach,
	StatusNoShow,
}

// ActiveStatuses список статусов активных занятий
var ActiveStatuses = []LessonStatus{
	StatusScheduled,
	StatusCompleted,
}
