package repository

import (
	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttemptRepository) Update(attempt *model.QuizAttempt) error {
	return r.DB.Save(attempt).Error
}

// CreateWithAttemptCap inserts a new attempt after re-checking the submitted
// attempt count inside one transaction. The quiz row is locked for the
// duration of the check so two concurrent starts cannot both pass the cap.
func (r *AttemptRepository) CreateWithAttemptCap(attempt *model.QuizAttempt, maxAttempts int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&quiz, attempt.QuizID).Error; err != nil {
			return err
		}

		if maxAttempts > 0 {
			var submitted int64
			if err := tx.Model(&model.QuizAttempt{}).
				Where("quiz_id = ? AND student_id = ? AND submitted_at IS NOT NULL", attempt.QuizID, attempt.StudentID).
				Count(&submitted).Error; err != nil {
				return err
			}
			if int(submitted) >= maxAttempts {
				return util.ErrMaxAttemptsReached
			}
		}

		return tx.Create(attempt).Error
	})
}

// CountSubmitted 统计该学生针对该测验已提交的次数
func (r *AttemptRepository) CountSubmitted(quizID, studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).
		Where("quiz_id = ? AND student_id = ? AND submitted_at IS NOT NULL", quizID, studentID).
		Count(&count).Error
	return count, err
}

func (r *AttemptRepository) FindInProgress(quizID, studentID uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.Where("quiz_id = ? AND student_id = ? AND submitted_at IS NULL", quizID, studentID).
		Order("started_at DESC").First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindLatestSubmitted returns the attempt shown as "current" to the student:
// the most recently submitted one.
func (r *AttemptRepository) FindLatestSubmitted(quizID, studentID uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.Preload("Answers").
		Where("quiz_id = ? AND student_id = ? AND submitted_at IS NOT NULL", quizID, studentID).
		Order("submitted_at DESC").First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListSubmittedByQuiz loads all submitted attempts with answers for reporting.
func (r *AttemptRepository) ListSubmittedByQuiz(quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Preload("Answers").
		Where("quiz_id = ? AND submitted_at IS NOT NULL", quizID).
		Order("submitted_at").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListByStudent(studentID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("student_id = ?", studentID).Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}

// ListPendingManual 查找包含待人工评分简答题的已提交作答
func (r *AttemptRepository) ListPendingManual(quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Preload("Answers").
		Where("quiz_id = ? AND submitted_at IS NOT NULL AND pending_manual = ?", quizID, true).
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) GetAnswers(attemptID uint) ([]model.QuizAnswer, error) {
	var answers []model.QuizAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).Find(&answers).Error
	return answers, err
}

func (r *AttemptRepository) FindAnswer(attemptID, questionID uint) (*model.QuizAnswer, error) {
	var ans model.QuizAnswer
	err := r.DB.Where("attempt_id = ? AND question_id = ?", attemptID, questionID).First(&ans).Error
	if err != nil {
		return nil, err
	}
	return &ans, nil
}

func (r *AttemptRepository) UpdateAnswer(answer *model.QuizAnswer) error {
	return r.DB.Save(answer).Error
}

// SaveGraded persists the attempt and its graded answers atomically.
func (r *AttemptRepository) SaveGraded(attempt *model.QuizAttempt, answers []model.QuizAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(attempt).Error; err != nil {
			return err
		}
		if len(answers) == 0 {
			return nil
		}
		return tx.Create(&answers).Error
	})
}
