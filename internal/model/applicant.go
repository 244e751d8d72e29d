package model

import "time"

type ApplicantStatus string

const (
	ApplicantPending  ApplicantStatus = "pending"
	ApplicantApproved ApplicantStatus = "approved"
	ApplicantRejected ApplicantStatus = "rejected"
)

// swagger:model Applicant
type Applicant struct {
	BaseModel
	FirstName      string          `gorm:"size:100;not null" json:"firstName"`
	LastName       string          `gorm:"size:100;not null" json:"lastName"`
	Email          string          `gorm:"size:100;not null;index" json:"email"`
	Phone          string          `gorm:"size:30" json:"phone"`
	BirthDate      time.Time       `json:"birthDate"`
	GradeLevel     int             `gorm:"not null" json:"gradeLevel"`
	PreviousSchool string          `gorm:"size:200" json:"previousSchool"`
	GuardianName   string          `gorm:"size:200" json:"guardianName"`
	GuardianEmail  string          `gorm:"size:100" json:"guardianEmail"`
	Status         ApplicantStatus `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	ReviewedBy     *uint           `gorm:"type:bigint unsigned" json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time      `json:"reviewedAt,omitempty"`
	RejectReason   string          `gorm:"type:text" json:"rejectReason,omitempty"`
	StudentID      *uint           `gorm:"type:bigint unsigned" json:"studentId,omitempty"` // set on approval
}

func (Applicant) TableName() string {
	return "applicants"
}
