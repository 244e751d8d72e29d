// @title SchoolHub 后端 API
// @version 1.0
// @description 学校管理平台的后端服务器：招生、班级与课表、测验评分、成绩册、考勤与公告。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"schoolhub_backend/internal/app"
	"schoolhub_backend/internal/config"
	"schoolhub_backend/pkg/configwatcher"
	"schoolhub_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("config reloaded", zap.String("schoolYear", newCfg.School.SchoolYear))
		application.Config = newCfg
	})

	application.Run()
}
