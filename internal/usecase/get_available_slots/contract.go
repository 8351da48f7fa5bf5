package get_available_slots

import (
	"context"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/integrations/profileservice"
)

// LessonRepository интерфейс репозитория занятий
type LessonRepository interface {
	// GetByCoachWithFilter получает занятия тренера по фильтру расписания
	GetByCoachWithFilter(ctx context.Context, filter domain.CoachScheduleFilter) ([]*domain.Lesson, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetWorkingHours(ctx context.Context, coachID int64) (*profileservice.WorkingHours, error)
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
