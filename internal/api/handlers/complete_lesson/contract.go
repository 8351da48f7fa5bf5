package complete_lesson

import (
	"context"

	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

type LessonService interface {
	Complete(ctx context.Context, lessonID int64, req *models.CompleteLessonRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
