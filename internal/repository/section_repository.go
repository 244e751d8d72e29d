package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

func (r *SectionRepository) Create(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) Update(section *model.Section) error {
	return r.DB.Save(section).Error
}

func (r *SectionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Section{}, id).Error
}

func (r *SectionRepository) FindByID(id uint) (*model.Section, error) {
	var s model.Section
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SectionRepository) List(schoolYear string, gradeLevel int) ([]model.Section, error) {
	var sections []model.Section
	q := r.DB.Model(&model.Section{})
	if schoolYear != "" {
		q = q.Where("school_year = ?", schoolYear)
	}
	if gradeLevel > 0 {
		q = q.Where("grade_level = ?", gradeLevel)
	}
	err := q.Order("grade_level, name").Find(&sections).Error
	return sections, err
}
