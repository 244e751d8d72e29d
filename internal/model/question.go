package model

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

// IsChoice reports whether the type is auto-gradable against an option set.
func (t QuestionType) IsChoice() bool {
	return t == MultipleChoice || t == TrueFalse
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID uint         `gorm:"index;type:bigint unsigned" json:"quizId"`
	Order  int          `gorm:"not null" json:"order"` // presentation and grading order, unique per quiz
	Type   QuestionType `gorm:"type:enum('multiple_choice','true_false','short_answer');not null" json:"type"`
	Prompt string       `gorm:"type:text;not null" json:"prompt"`
	Points int          `gorm:"not null" json:"points"`

	Options []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Option
type Option struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	Text       string `gorm:"size:500;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`
	Order      int    `gorm:"default:0" json:"order"`
}

func (Option) TableName() string {
	return "options"
}
