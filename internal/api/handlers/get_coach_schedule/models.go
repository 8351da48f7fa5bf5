package get_coach_schedule

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/service/lessons/models"
)

// parseQueryParams собирает запрос сервиса из query параметров URL.
// Все параметры опциональны: clientId, startDate, endDate, status, includeInactive.
func parseQueryParams(query url.Values, userID, coachID int64) (*models.GetCoachScheduleRequest, error) {
	req := &models.GetCoachScheduleRequest{
		UserID:  userID,
		CoachID: coachID,
	}

	if v := query.Get("clientId"); v != "" {
		clientID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid clientId: %w", err)
		}
		req.ClientID = &clientID
	}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &endDate
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
