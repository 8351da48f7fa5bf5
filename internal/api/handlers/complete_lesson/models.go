package complete_lesson

import (
	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

// CompleteLessonRequest HTTP request model
type CompleteLessonRequest struct {
	NoShow bool `json:"noShow,omitempty"` // true = клиент не пришёл на занятие
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CompleteLessonRequest) ToServiceRequest(userID int64) *models.CompleteLessonRequest {
	return &models.CompleteLessonRequest{
		UserID: userID,
		NoShow: r.NoShow,
	}
}
