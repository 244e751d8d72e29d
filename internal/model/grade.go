package model

import "time"

type GradeCategory string

const (
	GradeQuiz          GradeCategory = "quiz"
	GradeAssignment    GradeCategory = "assignment"
	GradeExam          GradeCategory = "exam"
	GradeParticipation GradeCategory = "participation"
)

// GradeEntry 成绩册中的一条成绩记录
// swagger:model GradeEntry
type GradeEntry struct {
	BaseModel
	StudentID  uint          `gorm:"index:idx_student_class;type:bigint unsigned" json:"studentId"`
	ClassID    uint          `gorm:"index:idx_student_class;type:bigint unsigned" json:"classId"`
	Term       string        `gorm:"size:20;not null;index" json:"term"` // e.g. "Q1".."Q4"
	Category   GradeCategory `gorm:"type:enum('quiz','assignment','exam','participation');not null" json:"category"`
	Label      string        `gorm:"size:200" json:"label"`
	Score      float64       `gorm:"not null" json:"score"`
	MaxScore   float64       `gorm:"not null" json:"maxScore"`
	RecordedBy uint          `gorm:"type:bigint unsigned" json:"recordedBy"`
	RecordedAt time.Time     `json:"recordedAt"`
}

func (GradeEntry) TableName() string {
	return "grade_entries"
}
