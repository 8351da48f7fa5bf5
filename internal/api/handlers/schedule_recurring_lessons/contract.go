package schedule_recurring_lessons

import (
	"context"

	scheduleRecurring "github.com/fitlink/FL-SchedulingService/internal/usecase/schedule_recurring_lessons"
)

type ScheduleRecurringLessonsUseCase interface {
	Execute(ctx context.Context, req *scheduleRecurring.Request) (*scheduleRecurring.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
