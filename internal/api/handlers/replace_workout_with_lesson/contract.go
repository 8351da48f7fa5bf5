package replace_workout_with_lesson

import (
	"context"

	replaceWorkout "github.com/fitlink/FL-SchedulingService/internal/usecase/replace_workout_with_lesson"
)

type ReplaceWorkoutUseCase interface {
	Execute(ctx context.Context, req replaceWorkout.Request) (*replaceWorkout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
