package schedule_recurring_lessons

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	scheduleRecurring "github.com/fitlink/FL-SchedulingService/internal/usecase/schedule_recurring_lessons"
)

// ScheduleRecurringLessonsRequest HTTP request model
type ScheduleRecurringLessonsRequest struct {
	CoachID         int64   `json:"coachId"`
	ClientID        int64   `json:"clientId"`
	AnchorDate      string  `json:"anchorDate"` // "2026-03-02"
	TimeOfDay       string  `json:"timeOfDay"`  // "10:00 AM"
	EndDate         string  `json:"endDate"`    // "2026-06-01", включительно
	Pattern         string  `json:"pattern"`    // weekly | biweekly | triweekly | monthly
	Interval        int     `json:"interval"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	SendEmail       bool    `json:"sendEmail,omitempty"`
	Timezone        string  `json:"timezone,omitempty"`
}

// RecurringSeriesResponse HTTP response model
type RecurringSeriesResponse struct {
	SeriesID     string `json:"seriesId"`
	TotalLessons int    `json:"totalLessons"`
	FirstDate    string `json:"firstDate"`
	LastDate     string `json:"lastDate"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleRecurringLessonsRequest) ToUseCaseRequest() (*scheduleRecurring.Request, error) {
	anchorDate, err := time.Parse(domain.DateFormat, r.AnchorDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &scheduleRecurring.Request{
		CoachID:         r.CoachID,
		ClientID:        r.ClientID,
		AnchorDate:      anchorDate,
		TimeOfDay:       r.TimeOfDay,
		EndDate:         endDate,
		Pattern:         domain.RecurrencePattern(r.Pattern),
		Interval:        r.Interval,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		SendEmail:       r.SendEmail,
		Timezone:        r.Timezone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleRecurring.Response) *RecurringSeriesResponse {
	return &RecurringSeriesResponse{
		SeriesID:     resp.SeriesID,
		TotalLessons: resp.TotalLessons,
		FirstDate:    resp.FirstDate.Format(domain.DateFormat),
		LastDate:     resp.LastDate.Format(domain.DateFormat),
	}
}
