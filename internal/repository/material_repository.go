package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(material *model.LearningMaterial) error {
	return r.DB.Create(material).Error
}

func (r *MaterialRepository) Update(material *model.LearningMaterial) error {
	return r.DB.Save(material).Error
}

func (r *MaterialRepository) Delete(id uint) error {
	return r.DB.Delete(&model.LearningMaterial{}, id).Error
}

func (r *MaterialRepository) FindByID(id uint) (*model.LearningMaterial, error) {
	var m model.LearningMaterial
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepository) ListByClass(classID uint) ([]model.LearningMaterial, error) {
	var materials []model.LearningMaterial
	err := r.DB.Where("class_id = ?", classID).Order("created_at DESC").Find(&materials).Error
	return materials, err
}
