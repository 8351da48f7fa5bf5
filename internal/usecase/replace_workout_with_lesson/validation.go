package replace_workout_with_lesson

import (
	"fmt"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// validateRequest проверяет бизнес-правила запроса до обращения к внешним сервисам
func validateRequest(req Request) error {
	if req.ProgramID <= 0 {
		return fmt.Errorf("%w: programID must be positive, got %d", ErrInvalidInput, req.ProgramID)
	}

	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive, got %d", ErrInvalidInput, req.CoachID)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive, got %d", ErrInvalidInput, req.ClientID)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeOfDay == "" {
		return fmt.Errorf("%w: timeOfDay is required", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative, got %d", ErrInvalidInput, req.DurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что день замены не в прошлом
func validateDate(lessonDate time.Time, now time.Time) error {
	dateOnly := dayOf(lessonDate)
	nowOnly := dayOf(now)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
