package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type ApplicantRepository struct {
	DB *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{DB: db}
}

func (r *ApplicantRepository) Create(applicant *model.Applicant) error {
	return r.DB.Create(applicant).Error
}

func (r *ApplicantRepository) FindByID(id uint) (*model.Applicant, error) {
	var a model.Applicant
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicantRepository) Update(applicant *model.Applicant) error {
	return r.DB.Save(applicant).Error
}

func (r *ApplicantRepository) List(status model.ApplicantStatus, page, limit int) ([]model.Applicant, int64, error) {
	var applicants []model.Applicant
	var total int64
	q := r.DB.Model(&model.Applicant{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&applicants).Error
	return applicants, total, err
}
