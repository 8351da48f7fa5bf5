package replace_workout_with_lesson

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	replaceWorkout "github.com/fitlink/FL-SchedulingService/internal/usecase/replace_workout_with_lesson"
)

// ReplaceWorkoutRequest HTTP request model
type ReplaceWorkoutRequest struct {
	CoachID         int64   `json:"coachId"`
	ClientID        int64   `json:"clientId"`
	Date            string  `json:"date"`      // "2026-03-15"
	TimeOfDay       string  `json:"timeOfDay"` // "2:30 PM"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	SendEmail       bool    `json:"sendEmail,omitempty"`
	Timezone        string  `json:"timezone,omitempty"`
}

// ReplacementResponse HTTP response model
type ReplacementResponse struct {
	LessonID      int64  `json:"lessonId"`
	CoachID       int64  `json:"coachId"`
	ClientID      int64  `json:"clientId"`
	ProgramID     int64  `json:"programId"`
	LocalDateTime string `json:"localDateTime"` // "2026-03-15T14:30:00"
	Status        string `json:"status"`
	Source        string `json:"source"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplaceWorkoutRequest) ToUseCaseRequest(programID int64) (replaceWorkout.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return replaceWorkout.Request{}, err
	}

	return replaceWorkout.Request{
		ProgramID:       programID,
		CoachID:         r.CoachID,
		ClientID:        r.ClientID,
		Date:            date,
		TimeOfDay:       r.TimeOfDay,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		SendEmail:       r.SendEmail,
		Timezone:        r.Timezone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *replaceWorkout.Response) *ReplacementResponse {
	return &ReplacementResponse{
		LessonID:      resp.LessonID,
		CoachID:       resp.CoachID,
		ClientID:      resp.ClientID,
		ProgramID:     resp.ProgramID,
		LocalDateTime: resp.LocalDateTime.Format("2006-01-02T15:04:05"),
		Status:        resp.Status,
		Source:        resp.Source,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
