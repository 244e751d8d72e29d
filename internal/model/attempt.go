package model

import "time"

// QuizAttempt 学生对一次测验的作答实例
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	QuizID           uint       `gorm:"index:idx_quiz_student;type:bigint unsigned" json:"quizId"`
	StudentID        uint       `gorm:"index:idx_quiz_student;type:bigint unsigned" json:"studentId"`
	StartedAt        time.Time  `json:"startedAt"`
	SubmittedAt      *time.Time `json:"submittedAt,omitempty"` // nil = in progress
	TimeSpentSeconds int        `json:"timeSpentSeconds"`
	TotalScore       *int       `json:"totalScore,omitempty"` // nil until graded
	PendingManual    bool       `gorm:"default:false" json:"pendingManual"`

	Answers []QuizAnswer `gorm:"foreignKey:AttemptID" json:"answers,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// Submitted reports whether the attempt has been turned in.
func (a *QuizAttempt) Submitted() bool {
	return a.SubmittedAt != nil
}

// swagger:model QuizAnswer
type QuizAnswer struct {
	BaseModel
	AttemptID        uint       `gorm:"uniqueIndex:idx_attempt_question;type:bigint unsigned" json:"attemptId"`
	QuestionID       uint       `gorm:"uniqueIndex:idx_attempt_question;type:bigint unsigned" json:"questionId"`
	SelectedOptionID *uint      `gorm:"type:bigint unsigned" json:"selectedOptionId,omitempty"`
	TextResponse     string     `gorm:"type:text" json:"textResponse,omitempty"`
	IsCorrect        *bool      `json:"isCorrect,omitempty"`     // nil = awaiting manual grade
	PointsAwarded    *int       `json:"pointsAwarded,omitempty"` // nil = awaiting manual grade
	GradedBy         *uint      `gorm:"type:bigint unsigned" json:"gradedBy,omitempty"`
	GradedAt         *time.Time `json:"gradedAt,omitempty"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
