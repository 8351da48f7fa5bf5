package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

func lessonAt(day time.Time, startTime string, status domain.LessonStatus) *domain.Lesson {
	return &domain.Lesson{
		CoachID:    1,
		ClientID:   2,
		LessonDate: day,
		StartTime:  types.TimeString(startTime),
		Status:     status,
	}
}

func TestHourIsFree(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	existing := []*domain.Lesson{
		lessonAt(day, "14:00", domain.StatusScheduled),
	}

	tests := []struct {
		name        string
		date        time.Time
		minuteOfDay int
		want        bool
	}{
		{name: "exact match is busy", date: day, minuteOfDay: 14 * 60, want: false},
		{name: "same hour different minute is busy", date: day, minuteOfDay: 14*60 + 30, want: false},
		{name: "previous hour is free", date: day, minuteOfDay: 13*60 + 59, want: true},
		{name: "next hour is free", date: day, minuteOfDay: 15 * 60, want: true},
		{name: "same hour other day is free", date: otherDay, minuteOfDay: 14 * 60, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HourIsFree(existing, tt.date, tt.minuteOfDay))
		})
	}
}

func TestHourIsFree_IgnoresInactiveLessons(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	existing := []*domain.Lesson{
		lessonAt(day, "10:00", domain.StatusCancelledByClient),
		lessonAt(day, "11:00", domain.StatusCancelledByCoach),
		lessonAt(day, "12:00", domain.StatusNoShow),
	}

	assert.True(t, HourIsFree(existing, day, 10*60))
	assert.True(t, HourIsFree(existing, day, 11*60))
	assert.True(t, HourIsFree(existing, day, 12*60))
}

func TestHourIsFree_EmptySchedule(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, HourIsFree(nil, day, 9*60))
}

// Занятие с любыми минутами внутри часа блокирует весь час
func TestHourIsFree_HourGranularity(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	existing := []*domain.Lesson{
		lessonAt(day, "14:45", domain.StatusScheduled),
	}

	for minute := 14 * 60; minute < 15*60; minute++ {
		assert.False(t, HourIsFree(existing, day, minute), "minute %d", minute)
	}
	assert.True(t, HourIsFree(existing, day, 15*60))
}
