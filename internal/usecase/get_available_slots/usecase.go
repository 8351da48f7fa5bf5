package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	profileClient "github.com/fitlink/FL-SchedulingService/internal/integrations/profileservice"
	"github.com/fitlink/FL-SchedulingService/internal/scheduling"
	"github.com/fitlink/FL-SchedulingService/pkg/ptr"
)

// UseCase use case для получения слотов тренера на день
type UseCase struct {
	lessonRepo    LessonRepository
	profileClient ProfileServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo:    lessonRepo,
		profileClient: profileClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, coach=%d, date=%s",
		req.UserID, req.CoachID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	day := dayOf(req.Date)

	// 2. Получаем рабочие часы тренера
	workingHours, err := uc.profileClient.GetWorkingHours(ctx, req.CoachID)
	if err != nil {
		if errors.Is(err, profileClient.ErrCoachNotFound) {
			uc.logger.Warn("GetAvailableSlots: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours for coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	hours := workingHours.ToSchedulingConfig()

	// 3. Проверяем, работает ли тренер в этот день недели
	if workingDays := hours.WorkingDaySet(); workingDays != nil {
		if _, ok := workingDays[day.Weekday()]; !ok {
			uc.logger.Info("GetAvailableSlots: coach id=%d does not work on %s", req.CoachID, day.Weekday())
			return &Response{
				Date:    day,
				CoachID: req.CoachID,
				Slots:   []Slot{},
			}, nil
		}
	}

	// 4. Генерируем сетку слотов по рабочим часам
	grid := scheduling.GenerateSlots(hours)

	// 5. Получаем занятия тренера на эту дату
	lessons, err := uc.lessonRepo.GetByCoachWithFilter(ctx, domain.CoachScheduleFilter{
		CoachID:   req.CoachID,
		StartDate: ptr.Ptr(day),
		EndDate:   ptr.Ptr(day),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get lessons: %v", err)
		return nil, fmt.Errorf("%w: failed to get lessons: %v", ErrInternal, err)
	}

	duration := hours.SlotIntervalMinutes
	if duration <= 0 {
		duration = domain.DefaultSlotIntervalMinutes
	}

	// 6. Вычисляем доступность каждого слота
	slots := make([]Slot, len(grid))
	for i, s := range grid {
		slots[i] = Slot{
			Label:           s.Label,
			MinuteOfDay:     s.MinuteOfDay,
			DurationMinutes: duration,
			Available:       scheduling.HourIsFree(lessons, day, s.MinuteOfDay),
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for coach=%d, date=%s",
		len(slots), req.CoachID, day.Format(domain.DateFormat))

	return &Response{
		Date:    day,
		CoachID: req.CoachID,
		Slots:   slots,
	}, nil
}

// dayOf обнуляет время, оставляя только календарный день
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
