package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"
	"schoolhub_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MaterialService struct {
	MaterialRepo *repository.MaterialRepository
	ClassRepo    *repository.ClassRepository
	Storage      *StorageService
}

func NewMaterialService(materialRepo *repository.MaterialRepository, classRepo *repository.ClassRepository, storage *StorageService) *MaterialService {
	return &MaterialService{
		MaterialRepo: materialRepo,
		ClassRepo:    classRepo,
		Storage:      storage,
	}
}

// Upload 上传课程资料。视频文件经 ffprobe 提取时长。
func (s *MaterialService) Upload(ctx context.Context, teacherID, classID uint, title, description string, file *multipart.FileHeader) (*model.LearningMaterial, error) {
	class, err := s.ClassRepo.FindByID(classID)
	if err != nil {
		return nil, util.ErrClassNotFound
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	mimeType, err := util.ValidateMimeType(src, util.AllowedMaterialMimeTypes)
	src.Close()
	if err != nil {
		return nil, err
	}

	// 先落盘临时文件，视频需要本地路径做探测
	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	src, err = file.Open()
	if err != nil {
		return nil, err
	}
	tmp, err := os.Create(tmpPath)
	if err != nil {
		src.Close()
		return nil, err
	}
	if _, err = tmp.ReadFrom(src); err != nil {
		src.Close()
		tmp.Close()
		os.Remove(tmpPath)
		return nil, err
	}
	src.Close()
	tmp.Close()
	defer os.Remove(tmpPath)

	var duration float64
	if util.IsVideo(mimeType) {
		if info, err := util.GetVideoInfo(tmpPath); err == nil {
			duration = info.Duration
		} else {
			logger.Log.Warn("failed to probe uploaded video", zap.Error(err))
		}
	}

	filename := fmt.Sprintf("materials/%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	url, err := s.Storage.UploadFile(ctx, filename, tmpPath, mimeType)
	if err != nil {
		return nil, err
	}

	material := &model.LearningMaterial{
		ClassID:         classID,
		TeacherID:       teacherID,
		Title:           title,
		Description:     description,
		FileURL:         url,
		FileName:        file.Filename,
		MimeType:        mimeType,
		SizeBytes:       file.Size,
		DurationSeconds: duration,
	}
	if err := s.MaterialRepo.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) Get(id uint) (*model.LearningMaterial, error) {
	material, err := s.MaterialRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMaterialNotFound
		}
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) ListByClass(classID uint) ([]model.LearningMaterial, error) {
	return s.MaterialRepo.ListByClass(classID)
}

func (s *MaterialService) Delete(ctx context.Context, teacherID, materialID uint) error {
	material, err := s.Get(materialID)
	if err != nil {
		return err
	}
	if material.TeacherID != teacherID {
		return util.ErrPermissionDenied
	}

	if err := s.MaterialRepo.Delete(materialID); err != nil {
		return err
	}
	// 存储删除失败不回滚记录，仅记日志
	if err := s.Storage.Delete(ctx, material.FileURL); err != nil {
		logger.Log.Warn("failed to delete material file from storage",
			zap.String("fileUrl", material.FileURL), zap.Error(err))
	}
	return nil
}
