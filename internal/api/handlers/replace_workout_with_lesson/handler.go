package replace_workout_with_lesson

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitlink/FL-SchedulingService/internal/api/handlers"
	replaceWorkout "github.com/fitlink/FL-SchedulingService/internal/usecase/replace_workout_with_lesson"
)

const (
	msgInvalidProgramID     = "некорректный ID программы"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректное время занятия, ожидается 12-часовой формат, например \"2:30 PM\""
	msgInvalidInput         = "некорректные данные замены"
	msgDateInPast           = "дата занятия в прошлом"
	msgProgramNotFound      = "день программы не найден"
	msgNoReplaceableWorkout = "на этот день нет тренировки, доступной для замены"
	msgClientMismatch       = "день программы принадлежит другому клиенту"
	msgSlotTaken            = "выбранное время уже занято"
)

type Handler struct {
	useCase ReplaceWorkoutUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceWorkoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/programs/{programId}/replace-workout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	programIDStr := vars["programId"]

	programID, err := strconv.ParseInt(programIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /programs/{id}/replace-workout - Invalid program ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProgramID)
		return
	}

	var req ReplaceWorkoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /programs/{id}/replace-workout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(programID)
	if err != nil {
		h.logger.Warn("POST /programs/{id}/replace-workout - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, replaceWorkout.ErrSlotTaken):
			h.logger.Warn("POST /programs/{id}/replace-workout - Slot taken: program_id=%d, coach_id=%d",
				programID, req.CoachID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, replaceWorkout.ErrProgramNotFound):
			h.logger.Warn("POST /programs/{id}/replace-workout - Program day not found: program_id=%d, date=%s",
				programID, req.Date)
			handlers.RespondNotFound(w, msgProgramNotFound)

		case errors.Is(err, replaceWorkout.ErrNoReplaceableWorkout):
			h.logger.Warn("POST /programs/{id}/replace-workout - No replaceable workout: program_id=%d, date=%s",
				programID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgNoReplaceableWorkout)

		case errors.Is(err, replaceWorkout.ErrClientMismatch):
			h.logger.Warn("POST /programs/{id}/replace-workout - Client mismatch: program_id=%d, client_id=%d",
				programID, req.ClientID)
			handlers.RespondForbidden(w, msgClientMismatch)

		case errors.Is(err, replaceWorkout.ErrInvalidTime):
			h.logger.Warn("POST /programs/{id}/replace-workout - Invalid time: program_id=%d, time=%q",
				programID, req.TimeOfDay)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, replaceWorkout.ErrInvalidDate):
			h.logger.Warn("POST /programs/{id}/replace-workout - Date in past: program_id=%d, date=%s",
				programID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, replaceWorkout.ErrInvalidInput):
			h.logger.Warn("POST /programs/{id}/replace-workout - Invalid input: program_id=%d: %v", programID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /programs/{id}/replace-workout - Failed to replace workout: program_id=%d, error=%v",
				programID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /programs/{id}/replace-workout - Workout replaced successfully: lesson_id=%d, program_id=%d",
		result.LessonID, programID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
