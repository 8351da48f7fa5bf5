package schedule_recurring_lessons

import (
	"errors"
	"net/http"

	"github.com/fitlink/FL-SchedulingService/internal/api/handlers"
	scheduleRecurring "github.com/fitlink/FL-SchedulingService/internal/usecase/schedule_recurring_lessons"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректное время занятия, ожидается 12-часовой формат, например \"10:00 AM\""
	msgInvalidInput       = "некорректные данные серии"
	msgInvalidRecurrence  = "некорректное правило повторения"
	msgRecurrenceTooLarge = "слишком длинная серия занятий, сократите диапазон дат"
	msgCoachNotFound      = "тренер не найден"
	msgNoOccurrences      = "все занятия серии выпадают на нерабочие дни тренера"
	msgSlotTaken          = "одно из занятий серии конфликтует с существующей записью"
)

type Handler struct {
	useCase ScheduleRecurringLessonsUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleRecurringLessonsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/recurring
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRecurringLessonsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/recurring - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /lessons/recurring - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleRecurring.ErrSlotTaken):
			h.logger.Warn("POST /lessons/recurring - Series conflict: coach_id=%d, anchor=%s",
				req.CoachID, req.AnchorDate)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, scheduleRecurring.ErrCoachNotFound):
			h.logger.Warn("POST /lessons/recurring - Coach not found: coach_id=%d", req.CoachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, scheduleRecurring.ErrInvalidTime):
			h.logger.Warn("POST /lessons/recurring - Invalid time: coach_id=%d, time=%q", req.CoachID, req.TimeOfDay)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, scheduleRecurring.ErrInvalidRecurrence):
			h.logger.Warn("POST /lessons/recurring - Invalid recurrence: coach_id=%d, pattern=%s, interval=%d",
				req.CoachID, req.Pattern, req.Interval)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, scheduleRecurring.ErrRecurrenceTooLarge):
			h.logger.Warn("POST /lessons/recurring - Recurrence too large: coach_id=%d, anchor=%s, end=%s",
				req.CoachID, req.AnchorDate, req.EndDate)
			handlers.RespondBadRequest(w, msgRecurrenceTooLarge)

		case errors.Is(err, scheduleRecurring.ErrNoOccurrences):
			h.logger.Warn("POST /lessons/recurring - No occurrences on working days: coach_id=%d", req.CoachID)
			handlers.RespondBadRequest(w, msgNoOccurrences)

		case errors.Is(err, scheduleRecurring.ErrInvalidInput):
			h.logger.Warn("POST /lessons/recurring - Invalid input: coach_id=%d, client_id=%d: %v",
				req.CoachID, req.ClientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /lessons/recurring - Failed to schedule series: coach_id=%d, client_id=%d, error=%v",
				req.CoachID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /lessons/recurring - Series scheduled successfully: series_id=%s, lessons=%d, coach_id=%d",
		result.SeriesID, result.TotalLessons, req.CoachID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
