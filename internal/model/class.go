package model

// Class 班级下的一门学科课程，由一名教师负责
// swagger:model Class
type Class struct {
	BaseModel
	SectionID uint   `gorm:"index;type:bigint unsigned" json:"sectionId"`
	TeacherID uint   `gorm:"index;type:bigint unsigned" json:"teacherId"` // teacher user id
	Subject   string `gorm:"size:100;not null" json:"subject"`
	Room      string `gorm:"size:50" json:"room"`

	Section Section        `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Slots   []ScheduleSlot `gorm:"foreignKey:ClassID" json:"slots,omitempty"`
}

func (Class) TableName() string {
	return "classes"
}

// ScheduleSlot 每周固定的上课时段，分钟数从当日零点起算
type ScheduleSlot struct {
	BaseModel
	ClassID  uint `gorm:"index;type:bigint unsigned" json:"classId"`
	Weekday  int  `gorm:"not null" json:"weekday"` // 1=Monday .. 7=Sunday
	StartMin int  `gorm:"not null" json:"startMin"`
	EndMin   int  `gorm:"not null" json:"endMin"`
}

func (ScheduleSlot) TableName() string {
	return "schedule_slots"
}
