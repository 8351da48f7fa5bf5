package schedule_lesson

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

// Request модель запроса на создание одиночного занятия
type Request struct {
	CoachID         int64     // ID тренера
	ClientID        int64     // ID клиента
	Date            time.Time // Выбранный календарный день (без времени)
	TimeOfDay       string    // Время начала в 12-часовом формате, например "2:30 PM"
	DurationMinutes int       // Длительность занятия, 0 = дефолтная
	Notes           *string   // Заметки тренера (опционально)
	SendEmail       bool      // Отправлять ли клиенту письмо о записи
	Timezone        string    // IANA идентификатор зоны тренера; только для форматирования уведомлений
}

// Response модель ответа с созданным занятием
type Response struct {
	ID              int64
	CoachID         int64
	ClientID        int64
	LessonDate      time.Time
	StartTime       types.TimeString
	LocalDateTime   time.Time // Wall-clock дата и время занятия одним значением
	DurationMinutes int
	Source          string
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func fromDomainLesson(l *domain.Lesson) *Response {
	return &Response{
		ID:              l.ID,
		CoachID:         l.CoachID,
		ClientID:        l.ClientID,
		LessonDate:      l.LessonDate,
		StartTime:       l.StartTime,
		LocalDateTime:   l.LocalDateTime(),
		DurationMinutes: l.DurationMinutes,
		Source:          string(l.Source),
		Status:          string(l.Status),
		Notes:           l.Notes,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
