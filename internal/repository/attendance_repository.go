package repository

import (
	"time"

	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// UpsertRecords 按 (class, student, date) 覆盖写入当日考勤
func (r *AttendanceRepository) UpsertRecords(records []model.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "class_id"}, {Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "remarks", "recorded_by", "updated_at"}),
	}).Create(&records).Error
}

func (r *AttendanceRepository) ListByClassAndDate(classID uint, date time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.DB.Where("class_id = ? AND date = ?", classID, date.Format("2006-01-02")).
		Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) ListByStudent(studentID uint, from, to time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	q := r.DB.Where("student_id = ?", studentID)
	if !from.IsZero() {
		q = q.Where("date >= ?", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", to.Format("2006-01-02"))
	}
	err := q.Order("date").Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) ListByClass(classID uint, from, to time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	q := r.DB.Where("class_id = ?", classID)
	if !from.IsZero() {
		q = q.Where("date >= ?", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", to.Format("2006-01-02"))
	}
	err := q.Order("date, student_id").Find(&records).Error
	return records, err
}
