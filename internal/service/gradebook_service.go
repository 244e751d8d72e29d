package service

import (
	"errors"
	"time"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"

	"gorm.io/gorm"
)

type GradebookService struct {
	GradeRepo   *repository.GradeRepository
	ClassRepo   *repository.ClassRepository
	StudentRepo *repository.StudentRepository
}

func NewGradebookService(gradeRepo *repository.GradeRepository, classRepo *repository.ClassRepository, studentRepo *repository.StudentRepository) *GradebookService {
	return &GradebookService{
		GradeRepo:   gradeRepo,
		ClassRepo:   classRepo,
		StudentRepo: studentRepo,
	}
}

type GradeEntryRequest struct {
	StudentID uint                `json:"studentId" binding:"required"`
	ClassID   uint                `json:"classId" binding:"required"`
	Term      string              `json:"term" binding:"required"`
	Category  model.GradeCategory `json:"category" binding:"required"`
	Label     string              `json:"label" binding:"required"`
	Score     float64             `json:"score" binding:"gte=0"`
	MaxScore  float64             `json:"maxScore" binding:"required,gt=0"`
}

func (s *GradebookService) Record(teacherID uint, req GradeEntryRequest) (*model.GradeEntry, error) {
	class, err := s.ClassRepo.FindByID(req.ClassID)
	if err != nil {
		return nil, util.ErrClassNotFound
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}
	student, err := s.StudentRepo.FindByID(req.StudentID)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}
	if student.SectionID == nil || *student.SectionID != class.SectionID {
		return nil, util.ErrStudentNotEnrolled
	}

	score := req.Score
	if score > req.MaxScore {
		score = req.MaxScore
	}
	entry := &model.GradeEntry{
		StudentID:  req.StudentID,
		ClassID:    req.ClassID,
		Term:       req.Term,
		Category:   req.Category,
		Label:      req.Label,
		Score:      score,
		MaxScore:   req.MaxScore,
		RecordedBy: teacherID,
		RecordedAt: time.Now(),
	}
	if err := s.GradeRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *GradebookService) UpdateEntry(teacherID, entryID uint, score float64) (*model.GradeEntry, error) {
	entry, err := s.GradeRepo.FindByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGradeEntryNotFound
		}
		return nil, err
	}
	class, err := s.ClassRepo.FindByID(entry.ClassID)
	if err != nil {
		return nil, util.ErrClassNotFound
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	if score < 0 {
		score = 0
	}
	if score > entry.MaxScore {
		score = entry.MaxScore
	}
	entry.Score = score
	entry.RecordedAt = time.Now()
	if err := s.GradeRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *GradebookService) DeleteEntry(teacherID, entryID uint) error {
	entry, err := s.GradeRepo.FindByID(entryID)
	if err != nil {
		return util.ErrGradeEntryNotFound
	}
	class, err := s.ClassRepo.FindByID(entry.ClassID)
	if err != nil {
		return util.ErrClassNotFound
	}
	if class.TeacherID != teacherID {
		return util.ErrPermissionDenied
	}
	return s.GradeRepo.Delete(entryID)
}

func (s *GradebookService) ListForStudent(studentID uint, term string) ([]model.GradeEntry, error) {
	return s.GradeRepo.ListByStudent(studentID, term)
}

func (s *GradebookService) ListForClass(classID uint, term string) ([]model.GradeEntry, error) {
	return s.GradeRepo.ListByClass(classID, term)
}

// StudentClassSummary 学生在一门课程某学期的成绩汇总
type StudentClassSummary struct {
	StudentID       uint                            `json:"studentId"`
	ClassID         uint                            `json:"classId"`
	Term            string                          `json:"term"`
	Entries         []model.GradeEntry              `json:"entries"`
	CategoryPercent map[model.GradeCategory]float64 `json:"categoryPercent"`
	OverallPercent  float64                         `json:"overallPercent"`
}

func (s *GradebookService) StudentClassSummary(studentID, classID uint, term string) (*StudentClassSummary, error) {
	entries, err := s.GradeRepo.ListByStudentAndClass(studentID, classID, term)
	if err != nil {
		return nil, err
	}
	return &StudentClassSummary{
		StudentID:       studentID,
		ClassID:         classID,
		Term:            term,
		Entries:         entries,
		CategoryPercent: CategoryPercentages(entries),
		OverallPercent:  OverallPercentage(entries),
	}, nil
}

// OverallPercentage 总得分率：得分总和 / 满分总和 * 100，无记录时为 0
func OverallPercentage(entries []model.GradeEntry) float64 {
	var score, max float64
	for _, e := range entries {
		score += e.Score
		max += e.MaxScore
	}
	if max == 0 {
		return 0
	}
	return score / max * 100
}

// CategoryPercentages 按类别聚合的得分率
func CategoryPercentages(entries []model.GradeEntry) map[model.GradeCategory]float64 {
	scores := make(map[model.GradeCategory]float64)
	maxes := make(map[model.GradeCategory]float64)
	for _, e := range entries {
		scores[e.Category] += e.Score
		maxes[e.Category] += e.MaxScore
	}

	percents := make(map[model.GradeCategory]float64, len(scores))
	for category, max := range maxes {
		if max == 0 {
			continue
		}
		percents[category] = scores[category] / max * 100
	}
	return percents
}
