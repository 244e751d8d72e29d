package model

import "time"

type QuizStatus string

const (
	QuizDraft     QuizStatus = "draft"
	QuizPublished QuizStatus = "published"
	QuizClosed    QuizStatus = "closed"
)

// swagger:model Quiz
type Quiz struct {
	BaseModel
	ClassID          uint       `gorm:"index;type:bigint unsigned" json:"classId"`
	TeacherID        uint       `gorm:"index;type:bigint unsigned" json:"teacherId"`
	Title            string     `gorm:"size:200;not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	Instructions     string     `gorm:"type:text" json:"instructions"`
	TimeLimitMinutes int        `gorm:"default:0" json:"timeLimitMinutes"` // 0 = no limit
	DueDate          *time.Time `json:"dueDate,omitempty"`
	MaxScore         int        `gorm:"default:0" json:"maxScore"`
	MaxAttempts      int        `gorm:"default:1" json:"maxAttempts"` // 0 = unlimited
	Status           QuizStatus `gorm:"type:enum('draft','published','closed');default:'draft'" json:"status"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty"`
	ClosedAt         *time.Time `json:"closedAt,omitempty"`

	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
