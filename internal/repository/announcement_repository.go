package repository

import (
	"schoolhub_backend/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) Create(announcement *model.Announcement) error {
	return r.DB.Create(announcement).Error
}

func (r *AnnouncementRepository) Update(announcement *model.Announcement) error {
	return r.DB.Save(announcement).Error
}

func (r *AnnouncementRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Announcement{}, id).Error
}

func (r *AnnouncementRepository) FindByID(id uint) (*model.Announcement, error) {
	var a model.Announcement
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListForAudience 返回对指定受众可见的已发布公告
func (r *AnnouncementRepository) ListForAudience(audiences []model.AnnouncementAudience, sectionID uint, page, limit int) ([]model.Announcement, int64, error) {
	var announcements []model.Announcement
	var total int64

	q := r.DB.Model(&model.Announcement{}).Where("published = ?", true)
	if sectionID > 0 {
		q = q.Where("audience IN ? OR (audience = ? AND section_id = ?)", audiences, model.AudienceSection, sectionID)
	} else {
		q = q.Where("audience IN ?", audiences)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&announcements).Error
	return announcements, total, err
}

func (r *AnnouncementRepository) ListAll(page, limit int) ([]model.Announcement, int64, error) {
	var announcements []model.Announcement
	var total int64
	if err := r.DB.Model(&model.Announcement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&announcements).Error
	return announcements, total, err
}

// ListDueScheduled 查找到期待发布的定时公告
func (r *AnnouncementRepository) ListDueScheduled() ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.DB.Where("published = ? AND publish_at IS NOT NULL AND publish_at <= NOW()", false).
		Find(&announcements).Error
	return announcements, err
}
