package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type GradeRepository struct {
	DB *gorm.DB
}

func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{DB: db}
}

func (r *GradeRepository) Create(entry *model.GradeEntry) error {
	return r.DB.Create(entry).Error
}

func (r *GradeRepository) Update(entry *model.GradeEntry) error {
	return r.DB.Save(entry).Error
}

func (r *GradeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.GradeEntry{}, id).Error
}

func (r *GradeRepository) FindByID(id uint) (*model.GradeEntry, error) {
	var e model.GradeEntry
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GradeRepository) ListByStudentAndClass(studentID, classID uint, term string) ([]model.GradeEntry, error) {
	var entries []model.GradeEntry
	q := r.DB.Where("student_id = ? AND class_id = ?", studentID, classID)
	if term != "" {
		q = q.Where("term = ?", term)
	}
	err := q.Order("recorded_at").Find(&entries).Error
	return entries, err
}

func (r *GradeRepository) ListByClass(classID uint, term string) ([]model.GradeEntry, error) {
	var entries []model.GradeEntry
	q := r.DB.Where("class_id = ?", classID)
	if term != "" {
		q = q.Where("term = ?", term)
	}
	err := q.Order("student_id, recorded_at").Find(&entries).Error
	return entries, err
}

func (r *GradeRepository) ListByStudent(studentID uint, term string) ([]model.GradeEntry, error) {
	var entries []model.GradeEntry
	q := r.DB.Where("student_id = ?", studentID)
	if term != "" {
		q = q.Where("term = ?", term)
	}
	err := q.Order("class_id, recorded_at").Find(&entries).Error
	return entries, err
}
