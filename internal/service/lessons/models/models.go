package models

import (
	"errors"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid lesson status")
)

// Request модели

// CancelLessonRequest запрос на отмену занятия
type CancelLessonRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// CancelSeriesRequest запрос на отмену серии занятий
type CancelSeriesRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// CompleteLessonRequest запрос на отметку занятия проведённым или пропущенным
type CompleteLessonRequest struct {
	UserID int64 `json:"userId"`
	NoShow bool  `json:"noShow,omitempty"` // true = клиент не пришёл
}

// GetCoachScheduleRequest запрос расписания тренера за период
type GetCoachScheduleRequest struct {
	UserID          int64      `json:"userId"`
	CoachID         int64      `json:"coachId"`
	ClientID        *int64     `json:"clientId,omitempty"`  // Фильтр по клиенту (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCoachScheduleRequest) ToDomainFilter() (domain.CoachScheduleFilter, error) {
	filter := domain.CoachScheduleFilter{
		CoachID:         r.CoachID,
		ClientID:        r.ClientID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainLessonStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// LessonResponse ответ с данными занятия
type LessonResponse struct {
	ID              int64  `json:"id"`
	CoachID         int64  `json:"coachId"`
	ClientID        int64  `json:"clientId"`
	LessonDate      string `json:"lessonDate"` // "2026-03-10"
	StartTime       string `json:"startTime"`  // "14:30"
	DurationMinutes int    `json:"durationMinutes"`
	Source          string `json:"source"`
	Status          string `json:"status"`

	SeriesID  *string `json:"seriesId,omitempty"`
	ProgramID *int64  `json:"programId,omitempty"`
	Notes     *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LessonListResponse ответ со списком занятий
type LessonListResponse struct {
	Lessons []LessonResponse `json:"lessons"`
}

// CancelSeriesResponse ответ с количеством отменённых занятий серии
type CancelSeriesResponse struct {
	SeriesID       string `json:"seriesId"`
	CancelledCount int64  `json:"cancelledCount"`
}

// Методы конвертации

// FromDomainLesson конвертирует domain модель в DTO
func FromDomainLesson(l *domain.Lesson) *LessonResponse {
	if l == nil {
		return nil
	}

	resp := &LessonResponse{
		ID:                 l.ID,
		CoachID:            l.CoachID,
		ClientID:           l.ClientID,
		LessonDate:         l.LessonDate.Format(domain.DateFormat),
		StartTime:          l.StartTime.String(),
		DurationMinutes:    l.DurationMinutes,
		Source:             string(l.Source),
		Status:             string(l.Status),
		SeriesID:           l.SeriesID,
		ProgramID:          l.ProgramID,
		Notes:              l.Notes,
		CancellationReason: l.CancellationReason,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}

	if l.CancelledAt != nil {
		cancelledAt := l.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainLessonList конвертирует список domain моделей в DTO
func FromDomainLessonList(lessons []*domain.Lesson) *LessonListResponse {
	result := make([]LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		result = append(result, *FromDomainLesson(l))
	}
	return &LessonListResponse{Lessons: result}
}

// ToDomainLessonStatus конвертирует строку в domain статус
func ToDomainLessonStatus(status string) (domain.LessonStatus, error) {
	switch domain.LessonStatus(status) {
	case domain.StatusScheduled, domain.StatusCompleted,
		domain.StatusCancelledByClient, domain.StatusCancelledByCoach, domain.StatusNoShow:
		return domain.LessonStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
