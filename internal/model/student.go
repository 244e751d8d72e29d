package model

import "time"

// swagger:model Student
type Student struct {
	BaseModel
	UserID        uint      `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	StudentNumber string    `gorm:"size:40;uniqueIndex" json:"studentNumber"`
	GradeLevel    int       `gorm:"not null" json:"gradeLevel"`
	SectionID     *uint     `gorm:"index;type:bigint unsigned" json:"sectionId,omitempty"`
	GuardianID    *uint     `gorm:"index;type:bigint unsigned" json:"guardianId,omitempty"`
	EnrolledAt    time.Time `json:"enrolledAt"`

	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Guardian *Guardian `gorm:"foreignKey:GuardianID" json:"guardian,omitempty"`
}

func (Student) TableName() string {
	return "students"
}

// Guardian 家长/监护人档案，一个监护人可关联多名学生
type Guardian struct {
	BaseModel
	UserID  uint   `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	Address string `gorm:"size:255" json:"address"`

	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Students []Student `gorm:"foreignKey:GuardianID" json:"students,omitempty"`
}

func (Guardian) TableName() string {
	return "guardians"
}
