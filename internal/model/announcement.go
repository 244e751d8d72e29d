package model

import "time"

type AnnouncementAudience string

const (
	AudienceAll      AnnouncementAudience = "all"
	AudienceStudents AnnouncementAudience = "students"
	AudienceTeachers AnnouncementAudience = "teachers"
	AudienceParents  AnnouncementAudience = "parents"
	AudienceSection  AnnouncementAudience = "section"
)

// swagger:model Announcement
type Announcement struct {
	BaseModel
	Title     string               `gorm:"size:200;not null" json:"title"`
	Body      string               `gorm:"type:text;not null" json:"body"`
	Audience  AnnouncementAudience `gorm:"type:enum('all','students','teachers','parents','section');default:'all'" json:"audience"`
	SectionID *uint                `gorm:"index;type:bigint unsigned" json:"sectionId,omitempty"` // required when audience = section
	AuthorID  uint                 `gorm:"type:bigint unsigned" json:"authorId"`
	PublishAt *time.Time           `json:"publishAt,omitempty"` // nil = publish immediately
	Published bool                 `gorm:"default:false;index" json:"published"`
}

func (Announcement) TableName() string {
	return "announcements"
}
