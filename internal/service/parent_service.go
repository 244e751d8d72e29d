package service

import (
	"errors"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ParentService struct {
	StudentRepo *repository.StudentRepository
	UserRepo    *repository.UserRepository
	DB          *gorm.DB
}

func NewParentService(studentRepo *repository.StudentRepository, userRepo *repository.UserRepository, db *gorm.DB) *ParentService {
	return &ParentService{
		StudentRepo: studentRepo,
		UserRepo:    userRepo,
		DB:          db,
	}
}

type GuardianCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// CreateGuardian 创建家长账号及监护人档案，同一事务内完成
func (s *ParentService) CreateGuardian(req GuardianCreateRequest) (*model.Guardian, error) {
	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var guardian *model.Guardian
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := &model.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashed),
			Role:     model.RoleParent,
			Phone:    req.Phone,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		guardian = &model.Guardian{
			UserID:  user.ID,
			Address: req.Address,
		}
		return tx.Create(guardian).Error
	})
	if err != nil {
		return nil, err
	}
	return guardian, nil
}

// LinkStudent 将学生挂到监护人名下
func (s *ParentService) LinkStudent(guardianID, studentID uint) (*model.Student, error) {
	var guardian model.Guardian
	if err := s.DB.First(&guardian, guardianID).Error; err != nil {
		return nil, util.ErrUserNotFound
	}
	student, err := s.StudentRepo.FindByID(studentID)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}

	student.GuardianID = &guardianID
	if err := s.StudentRepo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

// Children 家长名下的全部学生
func (s *ParentService) Children(parentUserID uint) ([]model.Student, error) {
	guardian, err := s.StudentRepo.FindGuardianByUserID(parentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return guardian.Students, nil
}

// AuthorizeChild 校验家长是否有权查看该学生，返回学生记录
func (s *ParentService) AuthorizeChild(parentUserID, studentID uint) (*model.Student, error) {
	guardian, err := s.StudentRepo.FindGuardianByUserID(parentUserID)
	if err != nil {
		return nil, util.ErrNotLinkedToStudent
	}
	linked, err := s.StudentRepo.GuardianHasStudent(guardian.ID, studentID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, util.ErrNotLinkedToStudent
	}
	return s.StudentRepo.FindByID(studentID)
}
