package service

import (
	"errors"
	"fmt"
	"time"

	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"
	"schoolhub_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdmissionService struct {
	ApplicantRepo *repository.ApplicantRepository
	UserRepo      *repository.UserRepository
	StudentRepo   *repository.StudentRepository
	Cfg           *config.Config
	DB            *gorm.DB
}

func NewAdmissionService(applicantRepo *repository.ApplicantRepository, userRepo *repository.UserRepository, studentRepo *repository.StudentRepository, cfg *config.Config, db *gorm.DB) *AdmissionService {
	return &AdmissionService{
		ApplicantRepo: applicantRepo,
		UserRepo:      userRepo,
		StudentRepo:   studentRepo,
		Cfg:           cfg,
		DB:            db,
	}
}

type ApplicationRequest struct {
	FirstName      string    `json:"firstName" binding:"required"`
	LastName       string    `json:"lastName" binding:"required"`
	Email          string    `json:"email" binding:"required,email"`
	Phone          string    `json:"phone"`
	BirthDate      time.Time `json:"birthDate" binding:"required"`
	GradeLevel     int       `json:"gradeLevel" binding:"required,gte=1"`
	PreviousSchool string    `json:"previousSchool"`
	GuardianName   string    `json:"guardianName"`
	GuardianEmail  string    `json:"guardianEmail"`
}

func (s *AdmissionService) Apply(req ApplicationRequest) (*model.Applicant, error) {
	applicant := &model.Applicant{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		BirthDate:      req.BirthDate,
		GradeLevel:     req.GradeLevel,
		PreviousSchool: req.PreviousSchool,
		GuardianName:   req.GuardianName,
		GuardianEmail:  req.GuardianEmail,
		Status:         model.ApplicantPending,
	}
	if err := s.ApplicantRepo.Create(applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

func (s *AdmissionService) Get(id uint) (*model.Applicant, error) {
	applicant, err := s.ApplicantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrApplicantNotFound
		}
		return nil, err
	}
	return applicant, nil
}

func (s *AdmissionService) List(status model.ApplicantStatus, page, limit int) ([]model.Applicant, int64, error) {
	return s.ApplicantRepo.List(status, page, limit)
}

// ApprovalResult 录取结果，临时密码仅在此处返回一次
type ApprovalResult struct {
	Applicant    *model.Applicant `json:"applicant"`
	Student      *model.Student   `json:"student"`
	TempPassword string           `json:"tempPassword"`
}

// Approve 录取申请人：同一事务内创建账号与学籍，并回写申请记录。
// 已处理过的申请返回 ErrApplicantProcessed。
func (s *AdmissionService) Approve(reviewerID, applicantID uint) (*ApprovalResult, error) {
	applicant, err := s.Get(applicantID)
	if err != nil {
		return nil, err
	}
	if applicant.Status != model.ApplicantPending {
		return nil, util.ErrApplicantProcessed
	}

	tempPassword := uuid.NewString()[:12]
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var student *model.Student
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := &model.User{
			Name:     applicant.FirstName + " " + applicant.LastName,
			Email:    applicant.Email,
			Password: string(hashed),
			Role:     model.RoleStudent,
			Phone:    applicant.Phone,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		now := time.Now()
		student = &model.Student{
			UserID:        user.ID,
			StudentNumber: fmt.Sprintf("%d-%05d", now.Year(), applicant.ID),
			GradeLevel:    applicant.GradeLevel,
			EnrolledAt:    now,
		}
		if err := tx.Create(student).Error; err != nil {
			return err
		}

		applicant.Status = model.ApplicantApproved
		applicant.ReviewedBy = &reviewerID
		applicant.ReviewedAt = &now
		applicant.StudentID = &student.ID
		return tx.Save(applicant).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("applicant approved",
		zap.Uint("applicantId", applicant.ID),
		zap.Uint("studentId", student.ID))

	return &ApprovalResult{
		Applicant:    applicant,
		Student:      student,
		TempPassword: tempPassword,
	}, nil
}

func (s *AdmissionService) Reject(reviewerID, applicantID uint, reason string) (*model.Applicant, error) {
	applicant, err := s.Get(applicantID)
	if err != nil {
		return nil, err
	}
	if applicant.Status != model.ApplicantPending {
		return nil, util.ErrApplicantProcessed
	}

	now := time.Now()
	applicant.Status = model.ApplicantRejected
	applicant.ReviewedBy = &reviewerID
	applicant.ReviewedAt = &now
	applicant.RejectReason = reason
	if err := s.ApplicantRepo.Update(applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}
