package schedule_lesson

import (
	"errors"
	"net/http"

	"github.com/fitlink/FL-SchedulingService/internal/api/handlers"
	scheduleLesson "github.com/fitlink/FL-SchedulingService/internal/usecase/schedule_lesson"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты занятия, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректное время занятия, ожидается 12-часовой формат, например \"2:30 PM\""
	msgInvalidInput       = "некорректные данные занятия"
	msgDateInPast         = "дата занятия в прошлом"
	msgSlotTaken          = "выбранное время уже занято"
)

type Handler struct {
	useCase ScheduleLessonUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleLessonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /lessons - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleLesson.ErrSlotTaken):
			h.logger.Warn("POST /lessons - Slot taken: coach_id=%d, date=%s, time=%s",
				req.CoachID, req.LessonDate, req.TimeOfDay)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, scheduleLesson.ErrInvalidTime):
			h.logger.Warn("POST /lessons - Invalid time: coach_id=%d, time=%q", req.CoachID, req.TimeOfDay)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, scheduleLesson.ErrInvalidDate):
			h.logger.Warn("POST /lessons - Date in past: coach_id=%d, date=%s", req.CoachID, req.LessonDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, scheduleLesson.ErrInvalidInput):
			h.logger.Warn("POST /lessons - Invalid input: coach_id=%d, client_id=%d: %v",
				req.CoachID, req.ClientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /lessons - Failed to schedule lesson: coach_id=%d, client_id=%d, error=%v",
				req.CoachID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /lessons - Lesson scheduled successfully: lesson_id=%d, coach_id=%d, client_id=%d",
		result.ID, req.CoachID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
