package domain

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

// LessonStatus represents the status of a lesson
type LessonStatus string

const (
	StatusScheduled         LessonStatus = "scheduled"
	StatusCompleted         LessonStatus = "completed"
	StatusCancelledByClient LessonStatus = "cancelled_by_client"
	StatusCancelledByCoach  LessonStatus = "cancelled_by_coach"
	StatusNoShow            LessonStatus = "no_show"
)

// LessonSource describes which scheduling operation created the lesson
type LessonSource string

const (
	// SourceSingle одиночное занятие
	SourceSingle LessonSource = "single"
	// SourceRecurring занятие из повторяющейся серии
	SourceRecurring LessonSource = "recurring"
	// SourceReplacement занятие, заменившее тренировку в программе
	SourceReplacement LessonSource = "replacement"
)

// Lesson represents a scheduled lesson between a coach and a client.
//
// LessonDate and StartTime together form the lesson's wall-clock datetime in
// the coach's locale. No UTC offset is attached and the value is never
// reinterpreted against a different timezone once constructed.
type Lesson struct {
	ID              int64
	CoachID         int64
	ClientID        int64
	LessonDate      time.Time        // Календарный день занятия (время обнулено)
	StartTime       types.TimeString // Время начала в рамках дня, без смещения UTC
	DurationMinutes int
	Source          LessonSource
	Status          LessonStatus

	// SeriesID группирует занятия одной повторяющейся серии
	SeriesID *string

	// ProgramID заполняется только для занятий-замен (source=replacement)
	ProgramID *int64

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LocalDateTime combines the lesson's calendar day with its start time into a
// single wall-clock value. The combination is done field by field, never via
// a UTC round-trip, so the result does not drift with the host timezone.
func (l *Lesson) LocalDateTime() time.Time {
	return time.Date(
		l.LessonDate.Year(), l.LessonDate.Month(), l.LessonDate.Day(),
		l.StartTime.Hour(), l.StartTime.Minute(), 0, 0,
		l.LessonDate.Location(),
	)
}

// IsActive returns true if the lesson is in an active state
func (l *Lesson) IsActive() bool {
	return l.Status != StatusCancelledByClient &&
		l.Status != StatusCancelledByCoach &&
		l.Status != StatusNoShow
}

// CanBeCancelled returns true if the lesson can be cancelled
func (l *Lesson) CanBeCancelled() bool {
	return l.Status == StatusScheduled
}

// CanBeCompleted returns true if the lesson can be marked as held
func (l *Lesson) CanBeCompleted() bool {
	return l.Status == StatusScheduled
}

// IsCancelled returns true if the lesson has been cancelled
func (l *Lesson) IsCancelled() bool {
	return l.Status == StatusCancelledByClient || l.Status == StatusCancelledByCoach
}

// CoachScheduleFilter фильтр для выборки занятий тренера
type CoachScheduleFilter struct {
	CoachID         int64         // Обязательный параметр
	ClientID        *int64        // Фильтр по клиенту (опционально)
	StartDate       *time.Time    // Начало периода (опционально)
	EndDate         *time.Time    // Конец периода (опционально)
	Status          *LessonStatus // Фильтр по статусу (опционально)
	IncludeInactive bool          // Включать ли отменённые занятия и no-show
}
