package schedule_lesson

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	scheduleLesson "github.com/fitlink/FL-SchedulingService/internal/usecase/schedule_lesson"
)

// ScheduleLessonRequest HTTP request model
type ScheduleLessonRequest struct {
	CoachID         int64   `json:"coachId"`
	ClientID        int64   `json:"clientId"`
	LessonDate      string  `json:"lessonDate"` // "2026-03-10"
	TimeOfDay       string  `json:"timeOfDay"`  // "2:30 PM"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	SendEmail       bool    `json:"sendEmail,omitempty"`
	Timezone        string  `json:"timezone,omitempty"`
}

// LessonResponse HTTP response model
type LessonResponse struct {
	ID              int64   `json:"id"`
	CoachID         int64   `json:"coachId"`
	ClientID        int64   `json:"clientId"`
	LessonDate      string  `json:"lessonDate"`
	StartTime       string  `json:"startTime"`
	LocalDateTime   string  `json:"localDateTime"` // "2026-03-10T14:30:00"
	DurationMinutes int     `json:"durationMinutes"`
	Source          string  `json:"source"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleLessonRequest) ToUseCaseRequest() (*scheduleLesson.Request, error) {
	lessonDate, err := time.Parse(domain.DateFormat, r.LessonDate)
	if err != nil {
		return nil, err
	}

	return &scheduleLesson.Request{
		CoachID:         r.CoachID,
		ClientID:        r.ClientID,
		Date:            lessonDate,
		TimeOfDay:       r.TimeOfDay,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		SendEmail:       r.SendEmail,
		Timezone:        r.Timezone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleLesson.Response) *LessonResponse {
	return &LessonResponse{
		ID:              resp.ID,
		CoachID:         resp.CoachID,
		ClientID:        resp.ClientID,
		LessonDate:      resp.LessonDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		LocalDateTime:   resp.LocalDateTime.Format("2006-01-02T15:04:05"),
		DurationMinutes: resp.DurationMinutes,
		Source:          resp.Source,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
