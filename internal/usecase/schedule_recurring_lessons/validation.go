package schedule_recurring_lessons

import (
	"fmt"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Все проверки выполняются до любых обращений к коллабораторам: запрос с
// нулевым интервалом или перепутанными датами не приводит ни к одному
// внешнему вызову.
func validateRequest(req *Request) error {
	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.AnchorDate.IsZero() {
		return fmt.Errorf("%w: anchor date is required", ErrInvalidInput)
	}

	if req.TimeOfDay == "" {
		return fmt.Errorf("%w: time of day is required", ErrInvalidInput)
	}

	// Для повторяющейся записи конечная дата обязательна
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", ErrInvalidInput)
	}

	if !req.Pattern.IsValid() {
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalidRecurrence, req.Pattern)
	}

	if req.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidRecurrence, req.Interval)
	}

	if dayOf(req.EndDate).Before(dayOf(req.AnchorDate)) {
		return fmt.Errorf("%w: end date %s is before anchor %s", ErrInvalidRecurrence,
			req.EndDate.Format(domain.DateFormat), req.AnchorDate.Format(domain.DateFormat))
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// dayOf обнуляет время, оставляя только календарный день
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
