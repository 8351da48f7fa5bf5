package get_lesson

import (
	"context"

	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

type LessonService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.LessonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
