package service

import (
	"testing"

	"schoolhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeAttendance(t *testing.T) {
	records := []model.AttendanceRecord{
		{Status: model.AttendancePresent},
		{Status: model.AttendancePresent},
		{Status: model.AttendanceLate},
		{Status: model.AttendanceAbsent},
		{Status: model.AttendanceExcused},
	}

	summary := SummarizeAttendance(records)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Excused)
	// late counts toward attendance, excused not toward absence
	assert.InDelta(t, 60.0, summary.PresentRate, 0.001)
	assert.InDelta(t, 20.0, summary.AbsentRate, 0.001)
}

func TestSummarizeAttendanceEmpty(t *testing.T) {
	summary := SummarizeAttendance(nil)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.PresentRate)
	assert.Zero(t, summary.AbsentRate)
}
