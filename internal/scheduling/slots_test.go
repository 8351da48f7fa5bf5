package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("hourly slots across a working day", func(t *testing.T) {
		slots := GenerateSlots(WorkingHours{
			StartTime:           "9:00 AM",
			EndTime:             "6:00 PM",
			SlotIntervalMinutes: 60,
		})

		require.Len(t, slots, 9)
		assert.Equal(t, "9:00 AM", slots[0].Label)
		assert.Equal(t, "5:00 PM", slots[8].Label)
	})

	t.Run("custom interval", func(t *testing.T) {
		slots := GenerateSlots(WorkingHours{
			StartTime:           "10:00 AM",
			EndTime:             "12:00 PM",
			SlotIntervalMinutes: 30,
		})

		require.Len(t, slots, 4)
		assert.Equal(t, []string{"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"},
			[]string{slots[0].Label, slots[1].Label, slots[2].Label, slots[3].Label})
	})

	t.Run("end is exclusive", func(t *testing.T) {
		slots := GenerateSlots(WorkingHours{
			StartTime:           "9:00 AM",
			EndTime:             "10:00 AM",
			SlotIntervalMinutes: 60,
		})

		require.Len(t, slots, 1)
		assert.Equal(t, "9:00 AM", slots[0].Label)
	})

	t.Run("start after end yields no slots", func(t *testing.T) {
		slots := GenerateSlots(WorkingHours{
			StartTime:           "6:00 PM",
			EndTime:             "9:00 AM",
			SlotIntervalMinutes: 60,
		})

		assert.Empty(t, slots)
	})

	t.Run("start equal to end yields no slots", func(t *testing.T) {
		slots := GenerateSlots(WorkingHours{
			StartTime:           "9:00 AM",
			EndTime:             "9:00 AM",
			SlotIntervalMinutes: 60,
		})

		assert.Empty(t, slots)
	})

	t.Run("unparseable start falls back to default grid", func(t *testing.T) {
		slots := GenerateSlots(WorkingHours{
			StartTime:           "nine-ish",
			EndTime:             "6:00 PM",
			SlotIntervalMinutes: 15,
		})

		// Дефолтная сетка: 9 почасовых слотов с 9:00 AM до 6:00 PM
		require.Len(t, slots, 9)
		assert.Equal(t, "9:00 AM", slots[0].Label)
		assert.Equal(t, "5:00 PM", slots[8].Label)
	})

	t.Run("unparseable end falls back to default grid", func(t *testing.T) {
		slots := GenerateSlots(WorkingHours{
			StartTime: "9:00 AM",
			EndTime:   "",
		})

		require.Len(t, slots, 9)
	})

	t.Run("zero interval uses default of 60 minutes", func(t *testing.T) {
		slots := GenerateSlots(WorkingHours{
			StartTime: "9:00 AM",
			EndTime:   "11:00 AM",
		})

		require.Len(t, slots, 2)
	})
}

// Для любой валидной конфигурации слоты строго возрастают, лежат в
// [start, end) и идут с шагом ровно в SlotIntervalMinutes
func TestGenerateSlots_Ordering(t *testing.T) {
	configs := []WorkingHours{
		{StartTime: "9:00 AM", EndTime: "6:00 PM", SlotIntervalMinutes: 60},
		{StartTime: "7:30 AM", EndTime: "3:15 PM", SlotIntervalMinutes: 45},
		{StartTime: "12:00 AM", EndTime: "11:59 PM", SlotIntervalMinutes: 5},
		{StartTime: "6:00 PM", EndTime: "9:00 PM", SlotIntervalMinutes: 90},
	}

	for _, cfg := range configs {
		slots := GenerateSlots(cfg)

		start, err := ParseClock(cfg.StartTime)
		require.NoError(t, err)
		end, err := ParseClock(cfg.EndTime)
		require.NoError(t, err)

		for i, slot := range slots {
			assert.GreaterOrEqual(t, slot.MinuteOfDay, start)
			assert.Less(t, slot.MinuteOfDay, end)
			assert.Equal(t, start+i*cfg.SlotIntervalMinutes, slot.MinuteOfDay)
			if i > 0 {
				assert.Equal(t, cfg.SlotIntervalMinutes, slot.MinuteOfDay-slots[i-1].MinuteOfDay)
			}
		}
	}
}

func TestWorkingHours_WorkingDaySet(t *testing.T) {
	t.Run("empty list means no filter", func(t *testing.T) {
		assert.Nil(t, WorkingHours{}.WorkingDaySet())
	})

	t.Run("listed days become a set", func(t *testing.T) {
		set := WorkingHours{
			WorkingDays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		}.WorkingDaySet()

		require.Len(t, set, 3)
		_, ok := set[time.Monday]
		assert.True(t, ok)
		_, ok = set[time.Sunday]
		assert.False(t, ok)
	})
}
