package schedule_lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/infra/events"
	lessonRepo "github.com/fitlink/FL-SchedulingService/internal/infra/storage/lesson"
	"github.com/fitlink/FL-SchedulingService/internal/scheduling"
	"github.com/fitlink/FL-SchedulingService/pkg/ptr"
	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

// UseCase use case для записи одиночного занятия
type UseCase struct {
	lessonRepo   LessonRepository
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo:   lessonRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case записи одиночного занятия.
// Использует сериализуемую транзакцию; окончательный арбитр конфликта двух
// одновременных записей на один слот - уникальный индекс в хранилище,
// проверка доступности носит предварительный характер.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleLesson: coach=%d, client=%d, date=%s, time=%s",
		req.CoachID, req.ClientID, req.Date.Format(domain.DateFormat), req.TimeOfDay)

	// 1. Валидация входных данных - до обращений к коллабораторам
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleLesson: validation failed: %v", err)
		return nil, err
	}

	// 2. Парсим 12-часовое время занятия
	minuteOfDay, err := scheduling.ParseClock(req.TimeOfDay)
	if err != nil {
		uc.logger.Warn("ScheduleLesson: failed to parse time %q: %v", req.TimeOfDay, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	startTime, err := types.NewTimeStringFromMinutes(minuteOfDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Дата занятия не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("ScheduleLesson: date validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultLessonDurationMinutes
	}

	var result *domain.Lesson

	// 4. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Занятия тренера на выбранный день
		filter := domain.CoachScheduleFilter{
			CoachID:   req.CoachID,
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
		}

		existing, err := uc.lessonRepo.GetByCoachWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("ScheduleLesson: failed to get existing lessons: %v", err)
			return fmt.Errorf("%w: failed to get existing lessons: %v", ErrInternal, err)
		}

		// 4.2. Предварительная проверка доступности слота
		if !scheduling.HourIsFree(existing, req.Date, minuteOfDay) {
			uc.logger.Warn("ScheduleLesson: slot taken, coach=%d, date=%s, time=%s",
				req.CoachID, req.Date.Format(domain.DateFormat), startTime)
			return ErrSlotTaken
		}

		// 4.3. Собираем wall-clock дату и время занятия из полей выбранного
		// дня и разобранного времени, без прохода через UTC
		newLesson := &domain.Lesson{
			CoachID:         req.CoachID,
			ClientID:        req.ClientID,
			LessonDate:      dateOnly(req.Date),
			StartTime:       startTime,
			DurationMinutes: duration,
			Source:          domain.SourceSingle,
			Status:          domain.StatusScheduled,
			Notes:           req.Notes,
		}

		created, err := uc.lessonRepo.Create(txCtx, newLesson)
		if err != nil {
			if errors.Is(err, lessonRepo.ErrDuplicateLesson) {
				uc.logger.Warn("ScheduleLesson: duplicate lesson, coach=%d, date=%s, time=%s",
					req.CoachID, req.Date.Format(domain.DateFormat), startTime)
				// Сообщение хранилища отдаём без изменений, без повторов
				return fmt.Errorf("%w: %v", ErrSlotTaken, err)
			}
			uc.logger.Error("ScheduleLesson: failed to create lesson: %v", err)
			return fmt.Errorf("%w: failed to create lesson: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Инвалидация кэшей представлений после фиксации
	uc.publisher.ClientRecordChanged(ctx, req.ClientID)
	uc.publisher.WeeklyScheduleChanged(ctx, req.ClientID)
	uc.publisher.CoachCalendarChanged(ctx, req.CoachID)
	uc.publisher.LessonScheduled(ctx, events.LessonScheduledEvent{
		CoachID:      req.CoachID,
		ClientID:     req.ClientID,
		TotalLessons: 1,
		SendEmail:    req.SendEmail,
		Timezone:     req.Timezone,
	})

	uc.logger.Info("ScheduleLesson: successfully created lesson id=%d", result.ID)

	return fromDomainLesson(result), nil
}

// dateOnly обнуляет время, оставляя только календарный день
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
