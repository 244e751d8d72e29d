package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Quiz{}, id).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var q model.Quiz
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// FindByIDWithQuestions loads the quiz with its ordered questions and options.
func (r *QuizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var q model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.order")
		}).
		First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuizRepository) ListByClass(classID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("class_id = ?", classID).Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) ListPublishedByClass(classID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("class_id = ? AND status = ?", classID, model.QuizPublished).
		Order("due_date").Find(&quizzes).Error
	return quizzes, err
}

// ListOverduePublished 查找已过截止时间但仍开放的测验，供定时任务关闭
func (r *QuizRepository) ListOverduePublished() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("status = ? AND due_date IS NOT NULL AND due_date < NOW()", model.QuizPublished).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuizRepository) UpdateQuestion(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuizRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.Preload("Options").First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuizRepository) DeleteQuestion(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

func (r *QuizRepository) ReplaceOptions(questionID uint, options []model.Option) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if len(options) == 0 {
			return nil
		}
		for i := range options {
			options[i].QuestionID = questionID
		}
		return tx.Create(&options).Error
	})
}

func (r *QuizRepository) NextQuestionOrder(quizID uint) (int, error) {
	var max int
	err := r.DB.Model(&model.Question{}).
		Where("quiz_id = ?", quizID).
		Select("COALESCE(MAX(`order`), 0)").
		Scan(&max).Error
	return max + 1, err
}
