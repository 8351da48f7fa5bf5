package cancel_lesson_series

import (
	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

// CancelSeriesRequest HTTP request model
type CancelSeriesRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelSeriesRequest) ToServiceRequest(userID int64) *models.CancelSeriesRequest {
	return &models.CancelSeriesRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
