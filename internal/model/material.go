package model

// LearningMaterial 教师上传的课程学习资料
// swagger:model LearningMaterial
type LearningMaterial struct {
	BaseModel
	ClassID         uint    `gorm:"index;type:bigint unsigned" json:"classId"`
	TeacherID       uint    `gorm:"index;type:bigint unsigned" json:"teacherId"`
	Title           string  `gorm:"size:200;not null" json:"title"`
	Description     string  `gorm:"type:text" json:"description"`
	FileURL         string  `gorm:"size:500;not null" json:"fileUrl"`
	FileName        string  `gorm:"size:255" json:"fileName"`
	MimeType        string  `gorm:"size:100" json:"mimeType"`
	SizeBytes       int64   `json:"sizeBytes"`
	DurationSeconds float64 `gorm:"default:0" json:"durationSeconds"` // videos only
}

func (LearningMaterial) TableName() string {
	return "learning_materials"
}
