package database

import (
	"fmt"
	"log"

	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Applicant{},
		&model.Guardian{},
		&model.Student{},
		&model.Section{},
		&model.Class{},
		&model.ScheduleSlot{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.QuizAttempt{},
		&model.QuizAnswer{},
		&model.Assignment{},
		&model.AssignmentSubmission{},
		&model.GradeEntry{},
		&model.AttendanceRecord{},
		&model.Announcement{},
		&model.LearningMaterial{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 初始管理员账号（仅在无管理员时创建）
	var adminCount int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&adminCount)
	if adminCount == 0 && cfg.School.AdminEmail != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.School.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &model.User{
			Name:     "Administrator",
			Email:    cfg.School.AdminEmail,
			Password: string(hashed),
			Role:     model.RoleAdmin,
		}
		if err := db.Create(admin).Error; err != nil {
			return nil, err
		}
		log.Printf("Seeded default admin account %s", cfg.School.AdminEmail)
	}

	return db, nil
}
