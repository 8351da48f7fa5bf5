package cancel_lesson_series

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fitlink/FL-SchedulingService/internal/api/handlers"
	"github.com/fitlink/FL-SchedulingService/internal/api/middleware"
	"github.com/fitlink/FL-SchedulingService/internal/service/lessons"
)

const (
	msgInvalidSeriesID    = "некорректный ID серии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "серия занятий не найдена"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgCannotCancel       = "в серии нет занятий, доступных для отмены"
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

// Handle PATCH /api/v1/lessons/series/{seriesId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем seriesId из URL
	vars := mux.Vars(r)
	seriesID := vars["seriesId"]
	if seriesID == "" {
		h.logger.Warn("PATCH /lessons/series/{id}/cancel - Missing series ID")
		handlers.RespondBadRequest(w, msgInvalidSeriesID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /lessons/series/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CancelSeriesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /lessons/series/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Отменяем серию
	result, err := h.service.CancelSeries(r.Context(), seriesID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, lessons.ErrSeriesNotFound):
			h.logger.Warn("PATCH /lessons/series/{id}/cancel - Series not found: series_id=%s", seriesID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, lessons.ErrAccessDenied):
			h.logger.Warn("PATCH /lessons/series/{id}/cancel - Access denied: series_id=%s, user_id=%d", seriesID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, lessons.ErrCannotCancel):
			h.logger.Warn("PATCH /lessons/series/{id}/cancel - Nothing to cancel: series_id=%s", seriesID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, lessons.ErrInvalidInput):
			h.logger.Warn("PATCH /lessons/series/{id}/cancel - Invalid input: series_id=%s: %v", seriesID, err)
			handlers.RespondBadRequest(w, msgInvalidSeriesID)

		default:
			h.logger.Error("PATCH /lessons/series/{id}/cancel - Failed to cancel series: series_id=%s, error=%v", seriesID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /lessons/series/{id}/cancel - Series cancelled successfully: series_id=%s, cancelled=%d, user_id=%d",
		seriesID, result.CancelledCount, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
