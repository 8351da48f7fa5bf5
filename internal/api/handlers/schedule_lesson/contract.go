package schedule_lesson

import (
	"context"

	scheduleLesson "github.com/fitlink/FL-SchedulingService/internal/usecase/schedule_lesson"
)

type ScheduleLessonUseCase interface {
	Execute(ctx context.Context, req *scheduleLesson.Request) (*scheduleLesson.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
