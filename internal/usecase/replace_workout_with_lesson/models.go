package replace_workout_with_lesson

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// Request запрос на замену тренировки занятием с тренером
type Request struct {
	ProgramID       int64
	CoachID         int64
	ClientID        int64
	Date            time.Time
	TimeOfDay       string // "2:30 PM"
	DurationMinutes int
	Notes           *string
	SendEmail       bool
	Timezone        string
}

// Response результат замены тренировки
type Response struct {
	LessonID      int64
	CoachID       int64
	ClientID      int64
	ProgramID     int64
	LocalDateTime time.Time
	Status        string
	Source        string
	CreatedAt     time.Time
}

func fromDomainLesson(lesson *domain.Lesson) *Response {
	resp := &Response{
		LessonID:      lesson.ID,
		CoachID:       lesson.CoachID,
		ClientID:      lesson.ClientID,
		LocalDateTime: lesson.LocalDateTime(),
		Status:        string(lesson.Status),
		Source:        string(lesson.Source),
		CreatedAt:     lesson.CreatedAt,
	}
	if lesson.ProgramID != nil {
		resp.ProgramID = *lesson.ProgramID
	}
	return resp
}
