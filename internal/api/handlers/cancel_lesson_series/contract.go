package cancel_lesson_series

import (
	"context"

	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

type LessonService interface {
	CancelSeries(ctx context.Context, seriesID string, req *models.CancelSeriesRequest) (*models.CancelSeriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
