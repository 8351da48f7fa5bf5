package schedule_recurring_lessons

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// Request модель запроса на создание повторяющейся серии занятий
type Request struct {
	CoachID         int64                    // ID тренера
	ClientID        int64                    // ID клиента
	AnchorDate      time.Time                // День первого занятия
	TimeOfDay       string                   // Время начала в 12-часовом формате; общее для всей серии
	EndDate         time.Time                // Последний допустимый день, включительно
	Pattern         domain.RecurrencePattern // weekly | biweekly | triweekly | monthly
	Interval        int                      // Положительный множитель шага
	DurationMinutes int                      // Длительность занятия, 0 = дефолтная
	Notes           *string
	SendEmail       bool   // Отправлять ли клиенту письмо о записи
	Timezone        string // IANA идентификатор зоны тренера; только для форматирования уведомлений
}

// Response модель ответа с созданной серией
type Response struct {
	SeriesID     string    // Общий идентификатор серии
	TotalLessons int       // Количество фактически созданных занятий
	FirstDate    time.Time // День первого занятия серии
	LastDate     time.Time // День последнего занятия серии
}
