package model

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceExcused AttendanceStatus = "excused"
)

// swagger:model AttendanceRecord
type AttendanceRecord struct {
	BaseModel
	ClassID    uint             `gorm:"uniqueIndex:idx_class_student_date;type:bigint unsigned" json:"classId"`
	StudentID  uint             `gorm:"uniqueIndex:idx_class_student_date;type:bigint unsigned" json:"studentId"`
	Date       time.Time        `gorm:"uniqueIndex:idx_class_student_date;type:date" json:"date"`
	Status     AttendanceStatus `gorm:"type:enum('present','late','absent','excused');not null" json:"status"`
	Remarks    string           `gorm:"size:255" json:"remarks,omitempty"`
	RecordedBy uint             `gorm:"type:bigint unsigned" json:"recordedBy"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
