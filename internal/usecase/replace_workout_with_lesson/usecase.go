package replace_workout_with_lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/infra/events"
	storage "github.com/fitlink/FL-SchedulingService/internal/infra/storage/lesson"
	"github.com/fitlink/FL-SchedulingService/internal/integrations/programservice"
	"github.com/fitlink/FL-SchedulingService/internal/scheduling"
	"github.com/fitlink/FL-SchedulingService/pkg/ptr"
	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

// UseCase заменяет тренировку из программы на персональное занятие с тренером.
// Занятие и отметка о замене фиксируются в одной транзакции: если
// ProgramService отклонил замену, вставка занятия откатывается.
type UseCase struct {
	lessonRepo    LessonRepository
	programClient ProgramServiceClient
	publisher     EventPublisher
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый use case замены тренировки
func NewUseCase(
	lessonRepo LessonRepository,
	programClient ProgramServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo:    lessonRepo,
		programClient: programClient,
		publisher:     publisher,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет замену тренировки занятием
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("ReplaceWorkoutWithLesson: program %d, coach %d, client %d, date %s %s",
		req.ProgramID, req.CoachID, req.ClientID, req.Date.Format(domain.DateFormat), req.TimeOfDay)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReplaceWorkoutWithLesson: validation failed: %v", err)
		return nil, err
	}

	minuteOfDay, err := scheduling.ParseClock(req.TimeOfDay)
	if err != nil {
		uc.logger.Warn("ReplaceWorkoutWithLesson: bad time %q: %v", req.TimeOfDay, err)
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTime, req.TimeOfDay, err)
	}

	startTime, err := types.NewTimeStringFromMinutes(minuteOfDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("ReplaceWorkoutWithLesson: date validation failed: %v", err)
		return nil, err
	}

	day := req.Date.Format(domain.DateFormat)

	programDay, err := uc.programClient.GetProgramDay(ctx, req.ProgramID, day)
	if err != nil {
		if errors.Is(err, programservice.ErrProgramNotFound) {
			uc.logger.Warn("ReplaceWorkoutWithLesson: program day not found: program %d, day %s", req.ProgramID, day)
			return nil, fmt.Errorf("%w: program %d, day %s", ErrProgramNotFound, req.ProgramID, day)
		}
		uc.logger.Error("ReplaceWorkoutWithLesson: program service failed: %v", err)
		return nil, fmt.Errorf("%w: program service: %v", ErrInternal, err)
	}

	if programDay.ClientID != req.ClientID {
		uc.logger.Warn("ReplaceWorkoutWithLesson: client mismatch: program day client %d, request client %d",
			programDay.ClientID, req.ClientID)
		return nil, fmt.Errorf("%w: program %d", ErrClientMismatch, req.ProgramID)
	}

	if !programDay.HasReplaceableWorkout() {
		uc.logger.Warn("ReplaceWorkoutWithLesson: nothing to replace: program %d, day %s", req.ProgramID, day)
		return nil, fmt.Errorf("%w: program %d, day %s", ErrNoReplaceableWorkout, req.ProgramID, day)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultLessonDurationMinutes
	}

	lesson := &domain.Lesson{
		CoachID:         req.CoachID,
		ClientID:        req.ClientID,
		LessonDate:      dayOf(req.Date),
		StartTime:       startTime,
		DurationMinutes: duration,
		Source:          domain.SourceReplacement,
		Status:          domain.StatusScheduled,
		ProgramID:       ptr.Ptr(req.ProgramID),
		Notes:           req.Notes,
	}

	var created *domain.Lesson
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, txErr := uc.lessonRepo.GetByCoachWithFilter(txCtx, domain.CoachScheduleFilter{
			CoachID:   req.CoachID,
			StartDate: ptr.Ptr(lesson.LessonDate),
			EndDate:   ptr.Ptr(lesson.LessonDate),
		})
		if txErr != nil {
			return fmt.Errorf("%w: load coach schedule: %v", ErrInternal, txErr)
		}

		if !scheduling.HourIsFree(existing, lesson.LessonDate, minuteOfDay) {
			return fmt.Errorf("%w: coach %d, %s %s", ErrSlotTaken, req.CoachID, day, req.TimeOfDay)
		}

		created, txErr = uc.lessonRepo.Create(txCtx, lesson)
		if txErr != nil {
			if errors.Is(txErr, storage.ErrDuplicateLesson) {
				return fmt.Errorf("%w: coach %d, %s %s", ErrSlotTaken, req.CoachID, day, req.TimeOfDay)
			}
			return fmt.Errorf("%w: create lesson: %v", ErrInternal, txErr)
		}

		// Отметка о замене внутри транзакции: её отказ откатывает вставку занятия
		if txErr = uc.programClient.MarkWorkoutReplaced(txCtx, req.ProgramID, day, created.ID); txErr != nil {
			if errors.Is(txErr, programservice.ErrWorkoutNotFound) {
				return fmt.Errorf("%w: program %d, day %s", ErrNoReplaceableWorkout, req.ProgramID, day)
			}
			return fmt.Errorf("%w: mark workout replaced: %v", ErrInternal, txErr)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken), errors.Is(err, ErrNoReplaceableWorkout):
			uc.logger.Warn("ReplaceWorkoutWithLesson: %v", err)
		default:
			uc.logger.Error("ReplaceWorkoutWithLesson: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.publisher.ClientRecordChanged(ctx, created.ClientID)
	uc.publisher.WeeklyScheduleChanged(ctx, created.ClientID)
	uc.publisher.CoachCalendarChanged(ctx, created.CoachID)
	uc.publisher.LessonScheduled(ctx, events.LessonScheduledEvent{
		CoachID:      created.CoachID,
		ClientID:     created.ClientID,
		TotalLessons: 1,
		SendEmail:    req.SendEmail,
		Timezone:     req.Timezone,
	})

	uc.logger.Info("ReplaceWorkoutWithLesson: lesson %d replaced workout in program %d", created.ID, req.ProgramID)
	return fromDomainLesson(created), nil
}

// dayOf обнуляет время, оставляя только календарный день
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
