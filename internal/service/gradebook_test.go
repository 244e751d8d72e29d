package service

import (
	"testing"

	"schoolhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func entry(category model.GradeCategory, score, max float64) model.GradeEntry {
	return model.GradeEntry{Category: category, Score: score, MaxScore: max}
}

func TestOverallPercentage(t *testing.T) {
	t.Run("weighted by max score", func(t *testing.T) {
		entries := []model.GradeEntry{
			entry(model.GradeQuiz, 40, 50),
			entry(model.GradeExam, 60, 100),
		}
		// (40+60)/(50+100) = 66.67%
		assert.InDelta(t, 66.666, OverallPercentage(entries), 0.01)
	})

	t.Run("no entries", func(t *testing.T) {
		assert.Zero(t, OverallPercentage(nil))
	})
}

func TestCategoryPercentages(t *testing.T) {
	entries := []model.GradeEntry{
		entry(model.GradeQuiz, 45, 50),
		entry(model.GradeQuiz, 30, 50),
		entry(model.GradeExam, 80, 100),
	}

	percents := CategoryPercentages(entries)

	assert.InDelta(t, 75.0, percents[model.GradeQuiz], 0.001)
	assert.InDelta(t, 80.0, percents[model.GradeExam], 0.001)
	_, ok := percents[model.GradeParticipation]
	assert.False(t, ok)
}
