package model

// swagger:model Section
type Section struct {
	BaseModel
	Name       string `gorm:"size:100;not null" json:"name"`
	GradeLevel int    `gorm:"not null;index" json:"gradeLevel"`
	SchoolYear string `gorm:"size:20;not null;index" json:"schoolYear"`
	AdviserID  *uint  `gorm:"type:bigint unsigned" json:"adviserId,omitempty"` // teacher user id
	Capacity   int    `gorm:"default:40" json:"capacity"`

	Students []Student `gorm:"foreignKey:SectionID" json:"students,omitempty"`
	Classes  []Class   `gorm:"foreignKey:SectionID" json:"classes,omitempty"`
}

func (Section) TableName() string {
	return "sections"
}
