package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) Create(class *model.Class) error {
	return r.DB.Create(class).Error
}

func (r *ClassRepository) Update(class *model.Class) error {
	return r.DB.Save(class).Error
}

func (r *ClassRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Class{}, id).Error
}

func (r *ClassRepository) FindByID(id uint) (*model.Class, error) {
	var c model.Class
	if err := r.DB.Preload("Slots").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClassRepository) ListBySection(sectionID uint) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Preload("Slots").Where("section_id = ?", sectionID).Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) ListByTeacher(teacherID uint) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Preload("Slots").Preload("Section").Where("teacher_id = ?", teacherID).Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) ReplaceSlots(classID uint, slots []model.ScheduleSlot) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", classID).Delete(&model.ScheduleSlot{}).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		for i := range slots {
			slots[i].ClassID = classID
		}
		return tx.Create(&slots).Error
	})
}
