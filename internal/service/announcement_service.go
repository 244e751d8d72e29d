package service

import (
	"errors"
	"time"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"
	"schoolhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AnnouncementService struct {
	AnnouncementRepo *repository.AnnouncementRepository
	StudentRepo      *repository.StudentRepository
}

func NewAnnouncementService(announcementRepo *repository.AnnouncementRepository, studentRepo *repository.StudentRepository) *AnnouncementService {
	return &AnnouncementService{
		AnnouncementRepo: announcementRepo,
		StudentRepo:      studentRepo,
	}
}

type AnnouncementRequest struct {
	Title     string                     `json:"title" binding:"required"`
	Body      string                     `json:"body" binding:"required"`
	Audience  model.AnnouncementAudience `json:"audience" binding:"required"`
	SectionID *uint                      `json:"sectionId"`
	PublishAt *time.Time                 `json:"publishAt"`
}

// Create 发布公告。PublishAt 为空立即发布，否则由定时任务到点发布。
func (s *AnnouncementService) Create(authorID uint, req AnnouncementRequest) (*model.Announcement, error) {
	if req.Audience == model.AudienceSection && req.SectionID == nil {
		return nil, util.ErrSectionNotFound
	}

	announcement := &model.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		Audience:  req.Audience,
		SectionID: req.SectionID,
		AuthorID:  authorID,
		PublishAt: req.PublishAt,
		Published: req.PublishAt == nil || !req.PublishAt.After(time.Now()),
	}
	if err := s.AnnouncementRepo.Create(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) Get(id uint) (*model.Announcement, error) {
	announcement, err := s.AnnouncementRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAnnouncementNotFound
		}
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.AnnouncementRepo.Delete(id)
}

func (s *AnnouncementService) ListAll(page, limit int) ([]model.Announcement, int64, error) {
	return s.AnnouncementRepo.ListAll(page, limit)
}

// ListForUser 按读者身份过滤可见公告。学生额外可见本班级组的公告。
func (s *AnnouncementService) ListForUser(role model.UserRole, userID uint, page, limit int) ([]model.Announcement, int64, error) {
	audiences := []model.AnnouncementAudience{model.AudienceAll}
	var sectionID uint

	switch role {
	case model.RoleStudent:
		audiences = append(audiences, model.AudienceStudents)
		if student, err := s.StudentRepo.FindByUserID(userID); err == nil && student.SectionID != nil {
			audiences = append(audiences, model.AudienceSection)
			sectionID = *student.SectionID
		}
	case model.RoleTeacher:
		audiences = append(audiences, model.AudienceTeachers)
	case model.RoleParent:
		audiences = append(audiences, model.AudienceParents)
	case model.RoleAdmin:
		return s.AnnouncementRepo.ListAll(page, limit)
	}

	return s.AnnouncementRepo.ListForAudience(audiences, sectionID, page, limit)
}

// PublishDueScheduled 将到点的定时公告置为已发布，由定时任务触发
func (s *AnnouncementService) PublishDueScheduled() error {
	due, err := s.AnnouncementRepo.ListDueScheduled()
	if err != nil {
		return err
	}
	for i := range due {
		due[i].Published = true
		if err := s.AnnouncementRepo.Update(&due[i]); err != nil {
			logger.Log.Error("failed to publish scheduled announcement",
				zap.Uint("announcementId", due[i].ID), zap.Error(err))
			continue
		}
		logger.Log.Info("published scheduled announcement",
			zap.Uint("announcementId", due[i].ID))
	}
	return nil
}
