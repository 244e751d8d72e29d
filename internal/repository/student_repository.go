package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) Update(student *model.Student) error {
	return r.DB.Save(student).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var s model.Student
	if err := r.DB.Preload("User").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) FindByUserID(userID uint) (*model.Student, error) {
	var s model.Student
	if err := r.DB.Preload("User").Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) ListBySection(sectionID uint) ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Preload("User").Where("section_id = ?", sectionID).Find(&students).Error
	return students, err
}

// CountBySection 班级实际在读人数，用作统计的花名册基数
func (r *StudentRepository) CountBySection(sectionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Student{}).Where("section_id = ?", sectionID).Count(&count).Error
	return count, err
}

func (r *StudentRepository) CreateGuardian(guardian *model.Guardian) error {
	return r.DB.Create(guardian).Error
}

func (r *StudentRepository) FindGuardianByUserID(userID uint) (*model.Guardian, error) {
	var g model.Guardian
	if err := r.DB.Preload("Students").Preload("Students.User").Where("user_id = ?", userID).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GuardianHasStudent 校验家长与学生的监护关系
func (r *StudentRepository) GuardianHasStudent(guardianID, studentID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Student{}).
		Where("id = ? AND guardian_id = ?", studentID, guardianID).
		Count(&count).Error
	return count > 0, err
}
