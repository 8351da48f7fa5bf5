package lessons

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	lessonRepo "github.com/fitlink/FL-SchedulingService/internal/infra/storage/lesson"
	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

// Service сервис для работы с занятиями
type Service struct {
	lessonRepo LessonRepository
	publisher  EventPublisher
	logger     Logger
}

// NewService создает новый экземпляр сервиса занятий
func NewService(
	lessonRepo LessonRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		lessonRepo: lessonRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// GetByID получает занятие по ID
// Занятие видят только его участники - тренер и клиент
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.LessonResponse, error) {
	s.logger.Info("GetByID: fetching lesson id=%d for user=%d", id, userID)

	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("GetByID: lesson id=%d not found", id)
			return nil, ErrLessonNotFound
		}
		s.logger.Error("GetByID: repository error for lesson id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(lesson, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to lesson id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched lesson id=%d", id)
	return models.FromDomainLesson(lesson), nil
}

// GetCoachSchedule получает расписание тренера с гибкой фильтрацией
// Поддерживает фильтрацию по клиенту, периоду, статусу и включению отменённых занятий
// Доступно только самому тренеру
//
// Примеры использования:
// - Все активные занятия: GetCoachSchedule(ctx, &GetCoachScheduleRequest{CoachID: 1, UserID: 1})
// - Занятия с конкретным клиентом: указать ClientID
// - Календарь на месяц: StartDate и EndDate указывают на границы месяца
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetCoachSchedule(ctx context.Context, req *models.GetCoachScheduleRequest) (*models.LessonListResponse, error) {
	logMsg := fmt.Sprintf("GetCoachSchedule: fetching schedule for coach=%d, user=%d", req.CoachID, req.UserID)
	if req.ClientID != nil {
		logMsg += fmt.Sprintf(", client=%d", *req.ClientID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Расписание тренера видит только он сам
	if req.UserID != req.CoachID {
		s.logger.Warn("GetCoachSchedule: access denied for user=%d to coach=%d schedule", req.UserID, req.CoachID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCoachSchedule: invalid filter for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	schedule, err := s.lessonRepo.GetByCoachWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCoachSchedule: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: GetCoachSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCoachSchedule: successfully fetched %d lessons for coach=%d", len(schedule), req.CoachID)
	return models.FromDomainLessonList(schedule), nil
}

// Cancel отменяет занятие
// Клиент может отменить только своё занятие (cancelled_by_client)
// Тренер может отменить любое своё занятие (cancelled_by_coach)
func (s *Service) Cancel(ctx context.Context, lessonID int64, req *models.CancelLessonRequest) error {
	s.logger.Info("Cancel: cancelling lesson id=%d by user=%d", lessonID, req.UserID)

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("Cancel: lesson id=%d not found", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("Cancel: repository error for lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !lesson.CanBeCancelled() {
		s.logger.Warn("Cancel: lesson id=%d cannot be cancelled, status=%s", lessonID, lesson.Status)
		return ErrCannotCancel
	}

	// Статус отмены зависит от того, кто отменяет
	cancelStatus, err := s.cancelStatusFor(lesson, req.UserID)
	if err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel lesson id=%d", req.UserID, lessonID)
		return err
	}

	if err := s.lessonRepo.Cancel(ctx, lessonID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("Cancel: lesson id=%d not found during cancellation", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("Cancel: repository error for lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.publisher.ClientRecordChanged(ctx, lesson.ClientID)
	s.publisher.WeeklyScheduleChanged(ctx, lesson.ClientID)
	s.publisher.CoachCalendarChanged(ctx, lesson.CoachID)

	s.logger.Info("Cancel: successfully cancelled lesson id=%d with status=%s", lessonID, cancelStatus)
	return nil
}

// CancelSeries отменяет все будущие занятия серии одним действием
// Уже проведённые и уже отменённые занятия серии не затрагиваются
func (s *Service) CancelSeries(ctx context.Context, seriesID string, req *models.CancelSeriesRequest) (*models.CancelSeriesResponse, error) {
	s.logger.Info("CancelSeries: cancelling series=%s by user=%d", seriesID, req.UserID)

	if seriesID == "" {
		return nil, fmt.Errorf("%w: seriesID is required", ErrInvalidInput)
	}

	series, err := s.lessonRepo.GetBySeriesID(ctx, seriesID)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrSeriesNotFound) {
			s.logger.Warn("CancelSeries: series=%s not found", seriesID)
			return nil, ErrSeriesNotFound
		}
		s.logger.Error("CancelSeries: repository error for series=%s: %v", seriesID, err)
		return nil, fmt.Errorf("%w: CancelSeries - repository error: %v", ErrInternal, err)
	}

	// Все занятия серии принадлежат одной паре тренер-клиент
	cancelStatus, err := s.cancelStatusFor(series[0], req.UserID)
	if err != nil {
		s.logger.Warn("CancelSeries: access denied for user=%d to series=%s", req.UserID, seriesID)
		return nil, err
	}

	count, err := s.lessonRepo.CancelSeries(ctx, seriesID, cancelStatus, req.CancellationReason)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrSeriesNotFound) {
			s.logger.Warn("CancelSeries: no cancellable lessons in series=%s", seriesID)
			return nil, ErrCannotCancel
		}
		s.logger.Error("CancelSeries: repository error for series=%s: %v", seriesID, err)
		return nil, fmt.Errorf("%w: CancelSeries - repository error: %v", ErrInternal, err)
	}

	s.publisher.ClientRecordChanged(ctx, series[0].ClientID)
	s.publisher.WeeklyScheduleChanged(ctx, series[0].ClientID)
	s.publisher.CoachCalendarChanged(ctx, series[0].CoachID)

	s.logger.Info("CancelSeries: successfully cancelled %d lessons in series=%s", count, seriesID)
	return &models.CancelSeriesResponse{
		SeriesID:       seriesID,
		CancelledCount: count,
	}, nil
}

// Complete отмечает занятие проведённым или пропущенным (no-show)
// Доступно только тренеру занятия
func (s *Service) Complete(ctx context.Context, lessonID int64, req *models.CompleteLessonRequest) error {
	s.logger.Info("Complete: marking lesson id=%d by user=%d, noShow=%v", lessonID, req.UserID, req.NoShow)

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("Complete: lesson id=%d not found", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("Complete: repository error for lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	// Итоги занятия подводит только тренер
	if lesson.CoachID != req.UserID {
		s.logger.Warn("Complete: access denied for user=%d to lesson id=%d", req.UserID, lessonID)
		return ErrAccessDenied
	}

	if !lesson.CanBeCompleted() {
		s.logger.Warn("Complete: lesson id=%d cannot be completed, status=%s", lessonID, lesson.Status)
		return ErrCannotComplete
	}

	newStatus := domain.StatusCompleted
	if req.NoShow {
		newStatus = domain.StatusNoShow
	}

	if err := s.lessonRepo.UpdateStatus(ctx, lessonID, newStatus); err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("Complete: lesson id=%d not found during update", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("Complete: repository error for lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.publisher.ClientRecordChanged(ctx, lesson.ClientID)
	s.publisher.CoachCalendarChanged(ctx, lesson.CoachID)

	s.logger.Info("Complete: successfully marked lesson id=%d as %s", lessonID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь является участником занятия
func (s *Service) checkUserAccess(lesson *domain.Lesson, userID int64) error {
	if lesson.CoachID == userID || lesson.ClientID == userID {
		return nil
	}
	return ErrAccessDenied
}

// cancelStatusFor определяет статус отмены по роли пользователя в занятии
func (s *Service) cancelStatusFor(lesson *domain.Lesson, userID int64) (domain.LessonStatus, error) {
	switch userID {
	case lesson.ClientID:
		return domain.StatusCancelledByClient, nil
	case lesson.CoachID:
		return domain.StatusCancelledByCoach, nil
	default:
		return "", ErrAccessDenied
	}
}
