package schedule_recurring_lessons

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/infra/events"
	lessonRepo "github.com/fitlink/FL-SchedulingService/internal/infra/storage/lesson"
	profileClient "github.com/fitlink/FL-SchedulingService/internal/integrations/profileservice"
	"github.com/fitlink/FL-SchedulingService/internal/scheduling"
	"github.com/fitlink/FL-SchedulingService/pkg/ptr"
	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

// UseCase use case для записи повторяющейся серии занятий
type UseCase struct {
	lessonRepo    LessonRepository
	profileClient ProfileServiceClient
	txManager     TransactionManager
	publisher     EventPublisher
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo:    lessonRepo,
		profileClient: profileClient,
		txManager:     txManager,
		publisher:     publisher,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case записи серии занятий.
//
// Серия вставляется целиком в одной сериализуемой транзакции: либо создаются
// все занятия, либо ни одного. TotalLessons в ответе - количество занятий,
// подтверждённое хранилищем, а не длина развёрнутого правила.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleRecurringLessons: coach=%d, client=%d, anchor=%s, end=%s, pattern=%s, interval=%d",
		req.CoachID, req.ClientID,
		req.AnchorDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.Pattern, req.Interval)

	// 1. Валидация входных данных - до обращений к коллабораторам
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleRecurringLessons: validation failed: %v", err)
		return nil, err
	}

	// 2. Парсим 12-часовое время занятия
	minuteOfDay, err := scheduling.ParseClock(req.TimeOfDay)
	if err != nil {
		uc.logger.Warn("ScheduleRecurringLessons: failed to parse time %q: %v", req.TimeOfDay, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	startTime, err := types.NewTimeStringFromMinutes(minuteOfDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Рабочие дни тренера - неизменяемый снимок на это решение
	workingHours, err := uc.profileClient.GetWorkingHours(ctx, req.CoachID)
	if err != nil {
		if errors.Is(err, profileClient.ErrCoachNotFound) {
			uc.logger.Warn("ScheduleRecurringLessons: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("ScheduleRecurringLessons: failed to get working hours for coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 4. Разворачиваем правило повторения с фильтром рабочих дней
	anchor := combineDateAndMinute(req.AnchorDate, minuteOfDay)

	occurrences, err := scheduling.ExpandRecurrence(scheduling.RecurrenceRule{
		Pattern:  req.Pattern,
		Interval: req.Interval,
		Anchor:   anchor,
		Until:    req.EndDate,
	}, workingHours.ToSchedulingConfig().WorkingDaySet())

	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidRecurrence):
			uc.logger.Warn("ScheduleRecurringLessons: invalid recurrence: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
		case errors.Is(err, scheduling.ErrRecurrenceTooLarge):
			uc.logger.Warn("ScheduleRecurringLessons: recurrence too large: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRecurrenceTooLarge, err)
		default:
			uc.logger.Error("ScheduleRecurringLessons: expansion failed: %v", err)
			return nil, fmt.Errorf("%w: expansion failed: %v", ErrInternal, err)
		}
	}

	if len(occurrences) == 0 {
		uc.logger.Warn("ScheduleRecurringLessons: no occurrences on working days, coach=%d", req.CoachID)
		return nil, ErrNoOccurrences
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultLessonDurationMinutes
	}

	// 5. Собираем занятия серии с общим seriesID
	seriesID := uuid.NewString()
	lessons := make([]*domain.Lesson, len(occurrences))
	for i, occ := range occurrences {
		lessons[i] = &domain.Lesson{
			CoachID:         req.CoachID,
			ClientID:        req.ClientID,
			LessonDate:      time.Date(occ.Year(), occ.Month(), occ.Day(), 0, 0, 0, 0, occ.Location()),
			StartTime:       startTime,
			DurationMinutes: duration,
			Source:          domain.SourceRecurring,
			SeriesID:        ptr.Ptr(seriesID),
			Status:          domain.StatusScheduled,
			Notes:           req.Notes,
		}
	}

	// 6. Вставляем серию целиком в одной сериализуемой транзакции
	var created []*domain.Lesson
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		batch, err := uc.lessonRepo.CreateBatch(txCtx, lessons)
		if err != nil {
			if errors.Is(err, lessonRepo.ErrDuplicateLesson) {
				uc.logger.Warn("ScheduleRecurringLessons: series conflicts with existing lesson, coach=%d", req.CoachID)
				return fmt.Errorf("%w: %v", ErrSlotTaken, err)
			}
			uc.logger.Error("ScheduleRecurringLessons: failed to create series: %v", err)
			return fmt.Errorf("%w: failed to create series: %v", ErrInternal, err)
		}
		created = batch
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 7. Инвалидация кэшей представлений после фиксации
	uc.publisher.ClientRecordChanged(ctx, req.ClientID)
	uc.publisher.WeeklyScheduleChanged(ctx, req.ClientID)
	uc.publisher.CoachCalendarChanged(ctx, req.CoachID)
	uc.publisher.LessonScheduled(ctx, events.LessonScheduledEvent{
		CoachID:      req.CoachID,
		ClientID:     req.ClientID,
		TotalLessons: len(created),
		SendEmail:    req.SendEmail,
		Timezone:     req.Timezone,
	})

	uc.logger.Info("ScheduleRecurringLessons: successfully created series=%s with %d lessons",
		seriesID, len(created))

	return &Response{
		SeriesID:     seriesID,
		TotalLessons: len(created),
		FirstDate:    created[0].LessonDate,
		LastDate:     created[len(created)-1].LessonDate,
	}, nil
}

// combineDateAndMinute собирает wall-clock якорь серии из календарного дня
// и минуты дня, без прохода через UTC
func combineDateAndMinute(date time.Time, minuteOfDay int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		minuteOfDay/60, minuteOfDay%60, 0, 0, date.Location())
}
