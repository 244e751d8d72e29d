package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	ClassID       uint       `gorm:"index;type:bigint unsigned" json:"classId"`
	TeacherID     uint       `gorm:"index;type:bigint unsigned" json:"teacherId"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	MaxScore      int        `gorm:"default:100" json:"maxScore"`
	AttachmentURL string     `gorm:"size:500" json:"attachmentUrl,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// swagger:model AssignmentSubmission
type AssignmentSubmission struct {
	BaseModel
	AssignmentID uint       `gorm:"index:idx_assignment_student;type:bigint unsigned" json:"assignmentId"`
	StudentID    uint       `gorm:"index:idx_assignment_student;type:bigint unsigned" json:"studentId"`
	FileURL      string     `gorm:"size:500" json:"fileUrl"`
	FileName     string     `gorm:"size:255" json:"fileName"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	Score        *int       `json:"score,omitempty"` // nil until graded
	Feedback     string     `gorm:"type:text" json:"feedback,omitempty"`
	GradedBy     *uint      `gorm:"type:bigint unsigned" json:"gradedBy,omitempty"`
	GradedAt     *time.Time `json:"gradedAt,omitempty"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}
