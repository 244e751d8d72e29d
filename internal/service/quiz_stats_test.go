package service

import (
	"testing"

	"schoolhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedAttempt(score int, answers ...model.QuizAnswer) model.QuizAttempt {
	return model.QuizAttempt{
		TotalScore: &score,
		Answers:    answers,
	}
}

func correctAnswer(questionID uint) model.QuizAnswer {
	ok := true
	return model.QuizAnswer{QuestionID: questionID, IsCorrect: &ok}
}

func wrongAnswer(questionID uint) model.QuizAnswer {
	ok := false
	return model.QuizAnswer{QuestionID: questionID, IsCorrect: &ok}
}

func TestComputeQuizStatistics(t *testing.T) {
	quiz := &model.Quiz{BaseModel: model.BaseModel{ID: 1}, MaxScore: 100}
	questions := []model.Question{
		{BaseModel: model.BaseModel{ID: 1}, Order: 1, Prompt: "Q1"},
		{BaseModel: model.BaseModel{ID: 2}, Order: 2, Prompt: "Q2"},
	}

	t.Run("aggregates over submitted attempts", func(t *testing.T) {
		attempts := []model.QuizAttempt{
			submittedAttempt(100, correctAnswer(1), correctAnswer(2)),
			submittedAttempt(50, correctAnswer(1), wrongAnswer(2)),
			submittedAttempt(50, wrongAnswer(1), correctAnswer(2)),
			submittedAttempt(0, wrongAnswer(1), wrongAnswer(2)),
			submittedAttempt(100, correctAnswer(1), correctAnswer(2)),
		}

		stats := ComputeQuizStatistics(quiz, questions, attempts, 20, 70)

		assert.Equal(t, 5, stats.AttemptCount)
		assert.InDelta(t, 25.0, stats.AttemptRate, 0.001) // 5 of 20
		assert.InDelta(t, 60.0, stats.AverageScore, 0.001)
		assert.InDelta(t, 40.0, stats.PassRate, 0.001) // 2 of 5 at >=70%

		require.Len(t, stats.QuestionStats, 2)
		assert.InDelta(t, 60.0, stats.QuestionStats[0].CorrectRate, 0.001)
		assert.InDelta(t, 60.0, stats.QuestionStats[1].CorrectRate, 0.001)
	})

	t.Run("no attempts yields zeroes", func(t *testing.T) {
		stats := ComputeQuizStatistics(quiz, questions, nil, 20, 70)

		assert.Equal(t, 0, stats.AttemptCount)
		assert.Zero(t, stats.AttemptRate)
		assert.Zero(t, stats.AverageScore)
		assert.Zero(t, stats.PassRate)
		require.Len(t, stats.QuestionStats, 2)
		assert.Zero(t, stats.QuestionStats[0].CorrectRate)
	})

	t.Run("zero roster avoids division", func(t *testing.T) {
		attempts := []model.QuizAttempt{submittedAttempt(80)}
		stats := ComputeQuizStatistics(quiz, questions, attempts, 0, 70)
		assert.Zero(t, stats.AttemptRate)
		assert.InDelta(t, 80.0, stats.AverageScore, 0.001)
	})

	t.Run("zero max score counts nobody as passing", func(t *testing.T) {
		emptyQuiz := &model.Quiz{BaseModel: model.BaseModel{ID: 2}, MaxScore: 0}
		attempts := []model.QuizAttempt{submittedAttempt(0)}
		stats := ComputeQuizStatistics(emptyQuiz, nil, attempts, 10, 70)
		assert.Zero(t, stats.PassRate)
	})

	t.Run("nil total score treated as zero", func(t *testing.T) {
		attempts := []model.QuizAttempt{
			{TotalScore: nil},
			submittedAttempt(100),
		}
		stats := ComputeQuizStatistics(quiz, questions, attempts, 10, 70)
		assert.InDelta(t, 50.0, stats.AverageScore, 0.001)
		assert.InDelta(t, 50.0, stats.PassRate, 0.001)
	})
}
