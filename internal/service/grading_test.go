package service

import (
	"testing"
	"time"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choiceQuestion(id uint, points int, correctOptionID uint, optionIDs ...uint) model.Question {
	q := model.Question{
		BaseModel: model.BaseModel{ID: id},
		Type:      model.MultipleChoice,
		Points:    points,
	}
	for i, oid := range optionIDs {
		q.Options = append(q.Options, model.Option{
			BaseModel: model.BaseModel{ID: oid},
			IsCorrect: oid == correctOptionID,
			Order:     i + 1,
		})
	}
	return q
}

func uintPtr(v uint) *uint { return &v }

func TestEvaluateAnswer(t *testing.T) {
	q := choiceQuestion(1, 50, 11, 11, 12, 13)

	tests := []struct {
		name       string
		question   model.Question
		answer     SubmittedAnswer
		wantErr    error
		wantPoints int
		wantOK     bool
		pending    bool
	}{
		{
			name:       "correct option gets full points",
			question:   q,
			answer:     SubmittedAnswer{QuestionID: 1, SelectedOptionID: uintPtr(11)},
			wantPoints: 50,
			wantOK:     true,
		},
		{
			name:       "wrong option gets zero",
			question:   q,
			answer:     SubmittedAnswer{QuestionID: 1, SelectedOptionID: uintPtr(12)},
			wantPoints: 0,
		},
		{
			name:       "unanswered choice counts as wrong",
			question:   q,
			answer:     SubmittedAnswer{QuestionID: 1},
			wantPoints: 0,
		},
		{
			name:     "option from another question rejected",
			question: q,
			answer:   SubmittedAnswer{QuestionID: 1, SelectedOptionID: uintPtr(99)},
			wantErr:  util.ErrOptionNotInQuestion,
		},
		{
			name:     "question id mismatch rejected",
			question: q,
			answer:   SubmittedAnswer{QuestionID: 2, SelectedOptionID: uintPtr(11)},
			wantErr:  util.ErrAnswerNotInQuiz,
		},
		{
			name: "short answer goes to manual grading",
			question: model.Question{
				BaseModel: model.BaseModel{ID: 1},
				Type:      model.ShortAnswer,
				Points:    20,
			},
			answer:  SubmittedAnswer{QuestionID: 1, TextResponse: "photosynthesis"},
			pending: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := EvaluateAnswer(&tt.question, tt.answer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			if tt.pending {
				assert.True(t, verdict.Pending)
				assert.Nil(t, verdict.IsCorrect)
				assert.Nil(t, verdict.PointsAwarded)
				return
			}
			require.NotNil(t, verdict.IsCorrect)
			require.NotNil(t, verdict.PointsAwarded)
			assert.Equal(t, tt.wantOK, *verdict.IsCorrect)
			assert.Equal(t, tt.wantPoints, *verdict.PointsAwarded)
		})
	}
}

func TestGradeSubmission(t *testing.T) {
	quiz := &model.Quiz{BaseModel: model.BaseModel{ID: 1}, MaxScore: 100}
	questions := []model.Question{
		choiceQuestion(1, 50, 11, 11, 12),
		choiceQuestion(2, 50, 21, 21, 22),
	}

	t.Run("one right one wrong scores half", func(t *testing.T) {
		result, err := GradeSubmission(quiz, questions, []SubmittedAnswer{
			{QuestionID: 1, SelectedOptionID: uintPtr(11)},
			{QuestionID: 2, SelectedOptionID: uintPtr(22)},
		})
		require.NoError(t, err)
		assert.Equal(t, 50, result.TotalScore)
		assert.False(t, result.PendingManual)
		assert.False(t, result.Clamped)
		assert.Len(t, result.Verdicts, 2)
	})

	t.Run("all correct scores max", func(t *testing.T) {
		result, err := GradeSubmission(quiz, questions, []SubmittedAnswer{
			{QuestionID: 1, SelectedOptionID: uintPtr(11)},
			{QuestionID: 2, SelectedOptionID: uintPtr(21)},
		})
		require.NoError(t, err)
		assert.Equal(t, 100, result.TotalScore)
	})

	t.Run("grading is deterministic", func(t *testing.T) {
		answers := []SubmittedAnswer{
			{QuestionID: 1, SelectedOptionID: uintPtr(11)},
			{QuestionID: 2, SelectedOptionID: uintPtr(22)},
		}
		first, err := GradeSubmission(quiz, questions, answers)
		require.NoError(t, err)
		second, err := GradeSubmission(quiz, questions, answers)
		require.NoError(t, err)
		assert.Equal(t, first.TotalScore, second.TotalScore)
		assert.Equal(t, first.Verdicts, second.Verdicts)
	})

	t.Run("repeated answer for one question rejected", func(t *testing.T) {
		_, err := GradeSubmission(quiz, questions, []SubmittedAnswer{
			{QuestionID: 1, SelectedOptionID: uintPtr(11)},
			{QuestionID: 1, SelectedOptionID: uintPtr(11)},
		})
		assert.ErrorIs(t, err, util.ErrDuplicateAnswer)
	})

	t.Run("answer for foreign question rejected", func(t *testing.T) {
		_, err := GradeSubmission(quiz, questions, []SubmittedAnswer{
			{QuestionID: 77, SelectedOptionID: uintPtr(11)},
		})
		assert.ErrorIs(t, err, util.ErrAnswerNotInQuiz)
	})

	t.Run("short answer marks attempt pending", func(t *testing.T) {
		mixed := append(questions, model.Question{
			BaseModel: model.BaseModel{ID: 3},
			Type:      model.ShortAnswer,
			Points:    10,
		})
		result, err := GradeSubmission(quiz, mixed, []SubmittedAnswer{
			{QuestionID: 1, SelectedOptionID: uintPtr(11)},
			{QuestionID: 3, TextResponse: "mitochondria"},
		})
		require.NoError(t, err)
		assert.True(t, result.PendingManual)
		assert.Equal(t, 50, result.TotalScore)
	})

	t.Run("total above max score clamps and flags", func(t *testing.T) {
		smallQuiz := &model.Quiz{BaseModel: model.BaseModel{ID: 2}, MaxScore: 60}
		result, err := GradeSubmission(smallQuiz, questions, []SubmittedAnswer{
			{QuestionID: 1, SelectedOptionID: uintPtr(11)},
			{QuestionID: 2, SelectedOptionID: uintPtr(21)},
		})
		require.NoError(t, err)
		assert.Equal(t, 60, result.TotalScore)
		assert.True(t, result.Clamped)
	})
}

func TestCanStartAttempt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		quiz      model.Quiz
		submitted int
		wantErr   error
	}{
		{
			name: "published quiz open",
			quiz: model.Quiz{Status: model.QuizPublished, MaxAttempts: 1},
		},
		{
			name:    "draft quiz rejected",
			quiz:    model.Quiz{Status: model.QuizDraft},
			wantErr: util.ErrQuizNotPublished,
		},
		{
			name:    "closed quiz rejected",
			quiz:    model.Quiz{Status: model.QuizClosed},
			wantErr: util.ErrQuizClosed,
		},
		{
			name:    "past due date blocks new attempt",
			quiz:    model.Quiz{Status: model.QuizPublished, DueDate: &past},
			wantErr: util.ErrDueDatePassed,
		},
		{
			name: "future due date allows start",
			quiz: model.Quiz{Status: model.QuizPublished, DueDate: &future},
		},
		{
			name:      "attempt cap reached",
			quiz:      model.Quiz{Status: model.QuizPublished, MaxAttempts: 2},
			submitted: 2,
			wantErr:   util.ErrMaxAttemptsReached,
		},
		{
			name:      "zero max attempts means unlimited",
			quiz:      model.Quiz{Status: model.QuizPublished, MaxAttempts: 0},
			submitted: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanStartAttempt(&tt.quiz, tt.submitted, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckSubmitDeadline(t *testing.T) {
	now := time.Now()

	t.Run("resubmission rejected", func(t *testing.T) {
		submittedAt := now.Add(-time.Minute)
		attempt := &model.QuizAttempt{StartedAt: now.Add(-time.Hour), SubmittedAt: &submittedAt}
		err := CheckSubmitDeadline(&model.Quiz{}, attempt, now)
		assert.ErrorIs(t, err, util.ErrAttemptSubmitted)
	})

	t.Run("within time limit accepted", func(t *testing.T) {
		quiz := &model.Quiz{TimeLimitMinutes: 30}
		attempt := &model.QuizAttempt{StartedAt: now.Add(-20 * time.Minute)}
		assert.NoError(t, CheckSubmitDeadline(quiz, attempt, now))
	})

	t.Run("within grace period accepted", func(t *testing.T) {
		quiz := &model.Quiz{TimeLimitMinutes: 30}
		attempt := &model.QuizAttempt{StartedAt: now.Add(-30*time.Minute - 10*time.Second)}
		assert.NoError(t, CheckSubmitDeadline(quiz, attempt, now))
	})

	t.Run("past grace period rejected", func(t *testing.T) {
		quiz := &model.Quiz{TimeLimitMinutes: 30}
		attempt := &model.QuizAttempt{StartedAt: now.Add(-31 * time.Minute)}
		err := CheckSubmitDeadline(quiz, attempt, now)
		assert.ErrorIs(t, err, util.ErrTimeExpired)
	})

	t.Run("no time limit never expires", func(t *testing.T) {
		attempt := &model.QuizAttempt{StartedAt: now.Add(-48 * time.Hour)}
		assert.NoError(t, CheckSubmitDeadline(&model.Quiz{}, attempt, now))
	})

	t.Run("due date does not block started attempt", func(t *testing.T) {
		past := now.Add(-time.Hour)
		quiz := &model.Quiz{DueDate: &past}
		attempt := &model.QuizAttempt{StartedAt: now.Add(-2 * time.Hour)}
		assert.NoError(t, CheckSubmitDeadline(quiz, attempt, now))
	})
}

func TestValidateQuestionKey(t *testing.T) {
	t.Run("single correct option passes", func(t *testing.T) {
		q := choiceQuestion(1, 10, 11, 11, 12, 13)
		assert.NoError(t, ValidateQuestionKey(&q))
	})

	t.Run("no correct option fails", func(t *testing.T) {
		q := choiceQuestion(1, 10, 0, 11, 12)
		assert.ErrorIs(t, ValidateQuestionKey(&q), util.ErrCorrectOptionMissing)
	})

	t.Run("two correct options fail", func(t *testing.T) {
		q := choiceQuestion(1, 10, 11, 11, 12)
		q.Options[1].IsCorrect = true
		assert.ErrorIs(t, ValidateQuestionKey(&q), util.ErrCorrectOptionMissing)
	})

	t.Run("true false needs exactly two options", func(t *testing.T) {
		q := model.Question{
			BaseModel: model.BaseModel{ID: 1},
			Type:      model.TrueFalse,
			Options: []model.Option{
				{BaseModel: model.BaseModel{ID: 11}, IsCorrect: true},
			},
		}
		assert.ErrorIs(t, ValidateQuestionKey(&q), util.ErrCorrectOptionMissing)

		q.Options = append(q.Options, model.Option{BaseModel: model.BaseModel{ID: 12}})
		assert.NoError(t, ValidateQuestionKey(&q))
	})

	t.Run("short answer needs no key", func(t *testing.T) {
		q := model.Question{Type: model.ShortAnswer}
		assert.NoError(t, ValidateQuestionKey(&q))
	})
}

func TestValidateManualGrade(t *testing.T) {
	short := model.Question{Type: model.ShortAnswer, Points: 10}

	t.Run("points clamped to question range", func(t *testing.T) {
		points, err := ValidateManualGrade(&short, 15)
		require.NoError(t, err)
		assert.Equal(t, 10, points)

		points, err = ValidateManualGrade(&short, -3)
		require.NoError(t, err)
		assert.Equal(t, 0, points)

		points, err = ValidateManualGrade(&short, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, points)
	})

	t.Run("choice questions reject manual grading", func(t *testing.T) {
		choice := choiceQuestion(1, 50, 11, 11, 12)
		_, err := ValidateManualGrade(&choice, 50)
		assert.ErrorIs(t, err, util.ErrNotManuallyGradable)

		tf := model.Question{Type: model.TrueFalse, Points: 5}
		_, err = ValidateManualGrade(&tf, 5)
		assert.ErrorIs(t, err, util.ErrNotManuallyGradable)
	})
}
