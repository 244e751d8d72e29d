package service

import (
	"testing"

	"schoolhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(classID uint, weekday, start, end int) model.ScheduleSlot {
	return model.ScheduleSlot{ClassID: classID, Weekday: weekday, StartMin: start, EndMin: end}
}

func TestSlotsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b model.ScheduleSlot
		want bool
	}{
		{"overlapping same day", slot(1, 1, 480, 540), slot(2, 1, 500, 560), true},
		{"contained slot", slot(1, 1, 480, 600), slot(2, 1, 500, 520), true},
		{"different weekday", slot(1, 1, 480, 540), slot(2, 2, 480, 540), false},
		{"back to back is not a conflict", slot(1, 1, 480, 540), slot(2, 1, 540, 600), false},
		{"identical slots", slot(1, 3, 600, 660), slot(2, 3, 600, 660), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slotsOverlap(tt.a, tt.b))
			assert.Equal(t, tt.want, slotsOverlap(tt.b, tt.a))
		})
	}
}

func TestFindScheduleConflict(t *testing.T) {
	existing := []model.ScheduleSlot{
		slot(1, 1, 480, 540), // Mon 08:00-09:00
		slot(2, 3, 600, 660), // Wed 10:00-11:00
	}

	t.Run("free slot has no conflict", func(t *testing.T) {
		conflict := FindScheduleConflict(existing, []model.ScheduleSlot{slot(3, 1, 540, 600)})
		assert.Nil(t, conflict)
	})

	t.Run("overlap found", func(t *testing.T) {
		conflict := FindScheduleConflict(existing, []model.ScheduleSlot{slot(3, 3, 630, 690)})
		require.NotNil(t, conflict)
		assert.Equal(t, uint(2), conflict.ClassID)
	})

	t.Run("own class slots ignored", func(t *testing.T) {
		conflict := FindScheduleConflict(existing, []model.ScheduleSlot{slot(1, 1, 480, 540)})
		assert.Nil(t, conflict)
	})
}

func TestBuildWeeklyTimetable(t *testing.T) {
	classes := []model.Class{
		{
			BaseModel: model.BaseModel{ID: 1},
			Subject:   "Mathematics",
			Room:      "201",
			Slots: []model.ScheduleSlot{
				slot(1, 1, 540, 600),
				slot(1, 3, 480, 540),
			},
		},
		{
			BaseModel: model.BaseModel{ID: 2},
			Subject:   "Science",
			Room:      "Lab A",
			Slots: []model.ScheduleSlot{
				slot(2, 1, 480, 540),
			},
		},
	}

	table := BuildWeeklyTimetable(classes)

	require.Len(t, table[1], 2)
	// Monday entries sorted by start time: Science 08:00 before Math 09:00
	assert.Equal(t, "Science", table[1][0].Subject)
	assert.Equal(t, "Mathematics", table[1][1].Subject)

	require.Len(t, table[3], 1)
	assert.Equal(t, "Mathematics", table[3][0].Subject)
	assert.Empty(t, table[2])
}
