package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	ClassRepo      *repository.ClassRepository
	Storage        *StorageService
}

func NewAssignmentService(assignmentRepo *repository.AssignmentRepository, classRepo *repository.ClassRepository, storage *StorageService) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		ClassRepo:      classRepo,
		Storage:        storage,
	}
}

type AssignmentRequest struct {
	ClassID     uint       `json:"classId" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxScore    int        `json:"maxScore" binding:"required,gt=0"`
}

func (s *AssignmentService) Create(teacherID uint, req AssignmentRequest) (*model.Assignment, error) {
	class, err := s.ClassRepo.FindByID(req.ClassID)
	if err != nil {
		return nil, util.ErrClassNotFound
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	assignment := &model.Assignment{
		ClassID:     req.ClassID,
		TeacherID:   teacherID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxScore:    req.MaxScore,
	}
	if err := s.AssignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Update(teacherID, assignmentID uint, req AssignmentRequest) (*model.Assignment, error) {
	assignment, err := s.owned(teacherID, assignmentID)
	if err != nil {
		return nil, err
	}

	assignment.Title = req.Title
	assignment.Description = req.Description
	assignment.DueDate = req.DueDate
	assignment.MaxScore = req.MaxScore
	if err := s.AssignmentRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Get(id uint) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) ListByClass(classID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.ListByClass(classID)
}

// AttachFile 上传作业附件，覆盖原有附件 URL
func (s *AssignmentService) AttachFile(ctx context.Context, teacherID, assignmentID uint, file *multipart.FileHeader) (*model.Assignment, error) {
	assignment, err := s.owned(teacherID, assignmentID)
	if err != nil {
		return nil, err
	}

	url, err := s.storeUpload(ctx, "assignments", file)
	if err != nil {
		return nil, err
	}

	assignment.AttachmentURL = url
	if err := s.AssignmentRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// Submit 学生提交作业文件。截止后不再接收，重复提交覆盖上一次。
func (s *AssignmentService) Submit(ctx context.Context, studentID, assignmentID uint, file *multipart.FileHeader) (*model.AssignmentSubmission, error) {
	assignment, err := s.Get(assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.DueDate != nil && time.Now().After(*assignment.DueDate) {
		return nil, util.ErrAssignmentClosed
	}

	url, err := s.storeUpload(ctx, "submissions", file)
	if err != nil {
		return nil, err
	}

	sub, err := s.AssignmentRepo.FindSubmission(assignmentID, studentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		sub = &model.AssignmentSubmission{
			AssignmentID: assignmentID,
			StudentID:    studentID,
		}
	}

	sub.FileURL = url
	sub.FileName = file.Filename
	sub.SubmittedAt = time.Now()
	sub.Score = nil
	sub.Feedback = ""
	sub.GradedBy = nil
	sub.GradedAt = nil

	if sub.ID == 0 {
		err = s.AssignmentRepo.CreateSubmission(sub)
	} else {
		err = s.AssignmentRepo.UpdateSubmission(sub)
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *AssignmentService) ListSubmissions(teacherID, assignmentID uint) ([]model.AssignmentSubmission, error) {
	if _, err := s.owned(teacherID, assignmentID); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.ListSubmissions(assignmentID)
}

// GradeSubmission 教师批改作业，分数截断在 [0, MaxScore]
func (s *AssignmentService) GradeSubmission(teacherID, submissionID uint, score int, feedback string) (*model.AssignmentSubmission, error) {
	sub, err := s.AssignmentRepo.FindSubmissionByID(submissionID)
	if err != nil {
		return nil, err
	}
	assignment, err := s.owned(teacherID, sub.AssignmentID)
	if err != nil {
		return nil, err
	}

	if score < 0 {
		score = 0
	}
	if score > assignment.MaxScore {
		score = assignment.MaxScore
	}

	now := time.Now()
	sub.Score = &score
	sub.Feedback = feedback
	sub.GradedBy = &teacherID
	sub.GradedAt = &now
	if err := s.AssignmentRepo.UpdateSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *AssignmentService) owned(teacherID, assignmentID uint) (*model.Assignment, error) {
	assignment, err := s.Get(assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}
	return assignment, nil
}

func (s *AssignmentService) storeUpload(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	filename := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), filepath.Ext(file.Filename))
	return s.Storage.Upload(ctx, filename, src, file.Size, contentType)
}
