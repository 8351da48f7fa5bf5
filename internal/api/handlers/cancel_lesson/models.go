package cancel_lesson

import (
	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

// CancelLessonRequest HTTP request model
type CancelLessonRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelLessonRequest) ToServiceRequest(userID int64) *models.CancelLessonRequest {
	return &models.CancelLessonRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
