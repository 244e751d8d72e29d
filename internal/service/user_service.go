package service

import (
	"errors"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type StaffCreateRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=8"`
	Role     model.UserRole `json:"role" binding:"required,oneof=teacher admin"`
	Phone    string         `json:"phone"`
}

// CreateStaff 管理员创建教师或管理员账号
func (s *UserService) CreateStaff(req StaffCreateRequest) (*model.User, error) {
	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		Phone:    req.Phone,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListByRole(role model.UserRole, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.ListByRole(role, page, limit)
}

func (s *UserService) SetDisabled(id uint, disabled bool) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	user.Disabled = disabled
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

type ProfileUpdateRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

func (s *UserService) UpdateProfile(id uint, req ProfileUpdateRequest) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	user.Name = req.Name
	user.Phone = req.Phone
	user.Avatar = req.Avatar
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
