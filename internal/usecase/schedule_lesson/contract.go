package schedule_lesson

import (
	"context"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/infra/events"
)

// LessonRepository интерфейс репозитория занятий
type LessonRepository interface {
	Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
	// GetByCoachWithFilter получает занятия тренера на конкретный день
	GetByCoachWithFilter(ctx context.Context, filter domain.CoachScheduleFilter) ([]*domain.Lesson, error)
}

// EventPublisher интерфейс публикации событий после фиксации записи
type EventPublisher interface {
	ClientRecordChanged(ctx context.Context, clientID int64)
	WeeklyScheduleChanged(ctx context.Context, clientID int64)
	CoachCalendarChanged(ctx context.Context, coachID int64)
	LessonScheduled(ctx context.Context, event events.LessonScheduledEvent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
