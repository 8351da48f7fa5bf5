package get_coach_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitlink/FL-SchedulingService/internal/api/handlers"
	"github.com/fitlink/FL-SchedulingService/internal/api/middleware"
	"github.com/fitlink/FL-SchedulingService/internal/service/lessons"
	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

const (
	msgInvalidCoachID = "некорректный ID тренера"
	msgInvalidQuery   = "некорректные параметры запроса"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgInvalidStatus  = "некорректный статус занятия"
)

type Handler struct {
	service LessonService
	logger  Logger
}

func NewHandler(service LessonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем coachId из URL
	vars := mux.Vars(r)
	coachIDStr := vars["coachId"]

	coachID, err := strconv.ParseInt(coachIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/schedule - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /coaches/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Разбираем опциональные фильтры из query
	req, err := parseQueryParams(r.URL.Query(), userID, coachID)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/schedule - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Получаем расписание
	response, err := h.service.GetCoachSchedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, lessons.ErrAccessDenied):
			h.logger.Warn("GET /coaches/{id}/schedule - Access denied: coach_id=%d, user_id=%d", coachID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, models.ErrInvalidStatus):
			h.logger.Warn("GET /coaches/{id}/schedule - Invalid status filter: coach_id=%d", coachID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, lessons.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/schedule - Invalid input: coach_id=%d", coachID)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /coaches/{id}/schedule - Failed to get schedule: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/schedule - Schedule retrieved: coach_id=%d, lessons=%d",
		coachID, len(response.Lessons))
	handlers.RespondJSON(w, http.StatusOK, response)
}
