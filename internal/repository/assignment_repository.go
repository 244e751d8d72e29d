package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) Update(assignment *model.Assignment) error {
	return r.DB.Save(assignment).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assignment{}, id).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var a model.Assignment
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) ListByClass(classID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("class_id = ?", classID).Order("due_date").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) CreateSubmission(sub *model.AssignmentSubmission) error {
	return r.DB.Create(sub).Error
}

func (r *AssignmentRepository) UpdateSubmission(sub *model.AssignmentSubmission) error {
	return r.DB.Save(sub).Error
}

func (r *AssignmentRepository) FindSubmission(assignmentID, studentID uint) (*model.AssignmentSubmission, error) {
	var s model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AssignmentRepository) FindSubmissionByID(id uint) (*model.AssignmentSubmission, error) {
	var s model.AssignmentSubmission
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AssignmentRepository) ListSubmissions(assignmentID uint) ([]model.AssignmentSubmission, error) {
	var subs []model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ?", assignmentID).Order("submitted_at").Find(&subs).Error
	return subs, err
}
