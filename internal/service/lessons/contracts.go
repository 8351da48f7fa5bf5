package lessons

import (
	"context"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// LessonRepository интерфейс репозитория занятий
type LessonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lesson, error)
	GetByCoachWithFilter(ctx context.Context, filter domain.CoachScheduleFilter) ([]*domain.Lesson, error)
	GetBySeriesID(ctx context.Context, seriesID string) ([]*domain.Lesson, error)
	Cancel(ctx context.Context, id int64, status domain.LessonStatus, reason *string) error
	CancelSeries(ctx context.Context, seriesID string, status domain.LessonStatus, reason *string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LessonStatus) error
}

// EventPublisher интерфейс публикации событий об изменении расписания
type EventPublisher interface {
	ClientRecordChanged(ctx context.Context, clientID int64)
	WeeklyScheduleChanged(ctx context.Context, clientID int64)
	CoachCalendarChanged(ctx context.Context, coachID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
