package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/integrations/profileservice"
	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

// --- моки коллабораторов ---

type mockLessonRepo struct {
	lessons []*domain.Lesson
	err     error
	calls   int
}

func (m *mockLessonRepo) GetByCoachWithFilter(_ context.Context, _ domain.CoachScheduleFilter) ([]*domain.Lesson, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.lessons, nil
}

type mockProfileClient struct {
	workingHours *profileservice.WorkingHours
	err          error
}

func (m *mockProfileClient) GetWorkingHours(_ context.Context, _ int64) (*profileservice.WorkingHours, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.workingHours, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, hhmm string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(hhmm)
	require.NoError(t, err)
	return ts
}

// --- тесты ---

func TestExecute_FullDayFree(t *testing.T) {
	profile := &mockProfileClient{workingHours: &profileservice.WorkingHours{
		CoachID:             1,
		StartTime:           "9:00 AM",
		EndTime:             "6:00 PM",
		SlotIntervalMinutes: 60,
	}}
	uc := NewUseCase(&mockLessonRepo{}, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID: 1,
		Date:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), // понедельник
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 9)

	assert.Equal(t, "9:00 AM", resp.Slots[0].Label)
	assert.Equal(t, "5:00 PM", resp.Slots[8].Label)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
		assert.Equal(t, 60, s.DurationMinutes)
	}
}

func TestExecute_BusyHourUnavailable(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	repo := &mockLessonRepo{
		lessons: []*domain.Lesson{
			{
				CoachID:    1,
				LessonDate: day,
				StartTime:  mustTime(t, "14:00"),
				Status:     domain.StatusScheduled,
			},
		},
	}
	profile := &mockProfileClient{workingHours: &profileservice.WorkingHours{
		CoachID:             1,
		StartTime:           "9:00 AM",
		EndTime:             "6:00 PM",
		SlotIntervalMinutes: 60,
	}}
	uc := NewUseCase(repo, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CoachID: 1, Date: day})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		if s.Label == "2:00 PM" {
			assert.False(t, s.Available, "занятый час должен быть недоступен")
		} else {
			assert.True(t, s.Available, "слот %s должен быть свободен", s.Label)
		}
	}
}

func TestExecute_CancelledLessonDoesNotBlock(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	repo := &mockLessonRepo{
		lessons: []*domain.Lesson{
			{
				CoachID:    1,
				LessonDate: day,
				StartTime:  mustTime(t, "14:00"),
				Status:     domain.StatusCancelledByCoach,
			},
		},
	}
	profile := &mockProfileClient{workingHours: &profileservice.WorkingHours{
		StartTime: "9:00 AM",
		EndTime:   "6:00 PM",
	}}
	uc := NewUseCase(repo, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CoachID: 1, Date: day})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestExecute_UnparseableHoursFallback(t *testing.T) {
	// Кривая конфигурация профиля не роняет выдачу: дефолтная сетка 9:00 AM -
	// 6:00 PM с почасовым шагом
	profile := &mockProfileClient{workingHours: &profileservice.WorkingHours{
		CoachID:   1,
		StartTime: "morning",
		EndTime:   "evening",
	}}
	uc := NewUseCase(&mockLessonRepo{}, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID: 1,
		Date:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 9)
	assert.Equal(t, "9:00 AM", resp.Slots[0].Label)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	repo := &mockLessonRepo{}
	profile := &mockProfileClient{workingHours: &profileservice.WorkingHours{
		CoachID:     1,
		StartTime:   "9:00 AM",
		EndTime:     "6:00 PM",
		WorkingDays: []string{"monday", "wednesday"},
	}}
	uc := NewUseCase(repo, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID: 1,
		Date:    time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), // вторник
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	// Занятия не запрашиваются для нерабочего дня
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_CoachNotFound(t *testing.T) {
	profile := &mockProfileClient{err: profileservice.ErrCoachNotFound}
	uc := NewUseCase(&mockLessonRepo{}, profile, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID: 99,
		Date:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCoachNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockLessonRepo{}, &mockProfileClient{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CoachID: 0})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
