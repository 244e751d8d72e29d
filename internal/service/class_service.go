package service

import (
	"errors"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"

	"gorm.io/gorm"
)

type ClassService struct {
	ClassRepo   *repository.ClassRepository
	SectionRepo *repository.SectionRepository
	UserRepo    *repository.UserRepository
}

func NewClassService(classRepo *repository.ClassRepository, sectionRepo *repository.SectionRepository, userRepo *repository.UserRepository) *ClassService {
	return &ClassService{
		ClassRepo:   classRepo,
		SectionRepo: sectionRepo,
		UserRepo:    userRepo,
	}
}

type ClassRequest struct {
	SectionID uint   `json:"sectionId" binding:"required"`
	TeacherID uint   `json:"teacherId" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Room      string `json:"room"`
}

type SlotRequest struct {
	Weekday  int `json:"weekday" binding:"required,gte=1,lte=7"`
	StartMin int `json:"startMin" binding:"gte=0,lt=1440"`
	EndMin   int `json:"endMin" binding:"required,gt=0,lte=1440"`
}

func (s *ClassService) Create(req ClassRequest) (*model.Class, error) {
	if _, err := s.SectionRepo.FindByID(req.SectionID); err != nil {
		return nil, util.ErrSectionNotFound
	}
	teacher, err := s.UserRepo.FindByID(req.TeacherID)
	if err != nil || teacher.Role != model.RoleTeacher {
		return nil, util.ErrUserNotFound
	}

	class := &model.Class{
		SectionID: req.SectionID,
		TeacherID: req.TeacherID,
		Subject:   req.Subject,
		Room:      req.Room,
	}
	if err := s.ClassRepo.Create(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Update(id uint, req ClassRequest) (*model.Class, error) {
	class, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	teacher, err := s.UserRepo.FindByID(req.TeacherID)
	if err != nil || teacher.Role != model.RoleTeacher {
		return nil, util.ErrUserNotFound
	}

	class.SectionID = req.SectionID
	class.TeacherID = req.TeacherID
	class.Subject = req.Subject
	class.Room = req.Room
	if err := s.ClassRepo.Update(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Get(id uint) (*model.Class, error) {
	class, err := s.ClassRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *ClassService) ListBySection(sectionID uint) ([]model.Class, error) {
	return s.ClassRepo.ListBySection(sectionID)
}

func (s *ClassService) ListByTeacher(teacherID uint) ([]model.Class, error) {
	return s.ClassRepo.ListByTeacher(teacherID)
}

// SetSchedule 整体替换课程时段。与同班级组或同教师的其他课程
// 时段重叠时拒绝，返回 ErrScheduleConflict。
func (s *ClassService) SetSchedule(classID uint, slots []SlotRequest) (*model.Class, error) {
	class, err := s.Get(classID)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.ScheduleSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.EndMin <= slot.StartMin {
			return nil, util.ErrScheduleConflict
		}
		candidates = append(candidates, model.ScheduleSlot{
			ClassID:  classID,
			Weekday:  slot.Weekday,
			StartMin: slot.StartMin,
			EndMin:   slot.EndMin,
		})
	}

	// 新时段之间也不允许互相重叠
	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if slotsOverlap(candidates[i], candidates[j]) {
				return nil, util.ErrScheduleConflict
			}
		}
	}

	existing, err := s.occupiedSlots(class)
	if err != nil {
		return nil, err
	}
	if conflict := FindScheduleConflict(existing, candidates); conflict != nil {
		return nil, util.ErrScheduleConflict
	}

	if err := s.ClassRepo.ReplaceSlots(classID, candidates); err != nil {
		return nil, err
	}
	class.Slots = candidates
	return class, nil
}

// SectionTimetable 班级组的周课表
func (s *ClassService) SectionTimetable(sectionID uint) (WeeklyTimetable, error) {
	if _, err := s.SectionRepo.FindByID(sectionID); err != nil {
		return nil, util.ErrSectionNotFound
	}
	classes, err := s.ClassRepo.ListBySection(sectionID)
	if err != nil {
		return nil, err
	}
	return BuildWeeklyTimetable(classes), nil
}

// TeacherTimetable 教师的授课周课表
func (s *ClassService) TeacherTimetable(teacherID uint) (WeeklyTimetable, error) {
	classes, err := s.ClassRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	return BuildWeeklyTimetable(classes), nil
}

// occupiedSlots 收集同一班级组和同一教师下其他课程占用的时段
func (s *ClassService) occupiedSlots(class *model.Class) ([]model.ScheduleSlot, error) {
	var slots []model.ScheduleSlot

	sectionClasses, err := s.ClassRepo.ListBySection(class.SectionID)
	if err != nil {
		return nil, err
	}
	teacherClasses, err := s.ClassRepo.ListByTeacher(class.TeacherID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	for _, group := range [][]model.Class{sectionClasses, teacherClasses} {
		for _, c := range group {
			if c.ID == class.ID || seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			slots = append(slots, c.Slots...)
		}
	}
	return slots, nil
}
