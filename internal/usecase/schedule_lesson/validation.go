package schedule_lesson

import (
	"fmt"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Выполняется до любых обращений к коллабораторам.
func validateRequest(req *Request) error {
	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата выбрана
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время выбрано
	if req.TimeOfDay == "" {
		return fmt.Errorf("%w: time of day is required", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что день занятия не в прошлом
func validateDate(lessonDate time.Time, now time.Time) error {
	dateOnly := time.Date(lessonDate.Year(), lessonDate.Month(), lessonDate.Day(), 0, 0, 0, 0, lessonDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
