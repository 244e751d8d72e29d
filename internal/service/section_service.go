package service

import (
	"errors"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"

	"gorm.io/gorm"
)

type SectionService struct {
	SectionRepo *repository.SectionRepository
	StudentRepo *repository.StudentRepository
	UserRepo    *repository.UserRepository
}

func NewSectionService(sectionRepo *repository.SectionRepository, studentRepo *repository.StudentRepository, userRepo *repository.UserRepository) *SectionService {
	return &SectionService{
		SectionRepo: sectionRepo,
		StudentRepo: studentRepo,
		UserRepo:    userRepo,
	}
}

type SectionRequest struct {
	Name       string `json:"name" binding:"required"`
	GradeLevel int    `json:"gradeLevel" binding:"required,gte=1"`
	SchoolYear string `json:"schoolYear" binding:"required"`
	AdviserID  *uint  `json:"adviserId"`
	Capacity   int    `json:"capacity" binding:"required,gt=0"`
}

func (s *SectionService) Create(req SectionRequest) (*model.Section, error) {
	if err := s.checkAdviser(req.AdviserID); err != nil {
		return nil, err
	}
	section := &model.Section{
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
		SchoolYear: req.SchoolYear,
		AdviserID:  req.AdviserID,
		Capacity:   req.Capacity,
	}
	if err := s.SectionRepo.Create(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *SectionService) Update(id uint, req SectionRequest) (*model.Section, error) {
	section, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAdviser(req.AdviserID); err != nil {
		return nil, err
	}

	section.Name = req.Name
	section.GradeLevel = req.GradeLevel
	section.SchoolYear = req.SchoolYear
	section.AdviserID = req.AdviserID
	section.Capacity = req.Capacity
	if err := s.SectionRepo.Update(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *SectionService) Get(id uint) (*model.Section, error) {
	section, err := s.SectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

func (s *SectionService) List(schoolYear string, gradeLevel int) ([]model.Section, error) {
	return s.SectionRepo.List(schoolYear, gradeLevel)
}

// EnrollStudent 将学生编入班级，超出容量返回 ErrSectionFull
func (s *SectionService) EnrollStudent(sectionID, studentID uint) (*model.Student, error) {
	section, err := s.Get(sectionID)
	if err != nil {
		return nil, err
	}
	student, err := s.StudentRepo.FindByID(studentID)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}

	count, err := s.StudentRepo.CountBySection(sectionID)
	if err != nil {
		return nil, err
	}
	if int(count) >= section.Capacity {
		return nil, util.ErrSectionFull
	}

	student.SectionID = &sectionID
	student.GradeLevel = section.GradeLevel
	if err := s.StudentRepo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *SectionService) Roster(sectionID uint) ([]model.Student, error) {
	if _, err := s.Get(sectionID); err != nil {
		return nil, err
	}
	return s.StudentRepo.ListBySection(sectionID)
}

func (s *SectionService) checkAdviser(adviserID *uint) error {
	if adviserID == nil {
		return nil
	}
	adviser, err := s.UserRepo.FindByID(*adviserID)
	if err != nil || adviser.Role != model.RoleTeacher {
		return util.ErrUserNotFound
	}
	return nil
}
