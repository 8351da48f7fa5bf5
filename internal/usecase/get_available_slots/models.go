package get_available_slots

import (
	"time"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID  int64     // ID пользователя (для логирования, не влияет на результат)
	CoachID int64     // ID тренера
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на день
type Response struct {
	Date    time.Time // Дата, на которую запрашивались слоты
	CoachID int64     // ID тренера
	Slots   []Slot    // Список слотов
}

// Slot модель временного слота
type Slot struct {
	Label           string // Время начала в 12-часовом формате (например, "2:30 PM")
	MinuteOfDay     int    // Минута дня начала слота
	DurationMinutes int    // Длительность слота в минутах
	Available       bool   // Свободен ли слот
}
