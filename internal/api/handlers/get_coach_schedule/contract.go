package get_coach_schedule

import (
	"context"

	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

type LessonService interface {
	GetCoachSchedule(ctx context.Context, req *models.GetCoachScheduleRequest) (*models.LessonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
