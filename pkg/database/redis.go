package database

import (
	"context"
	"fmt"
	"time"

	"schoolhub_backend/internal/config"
	"schoolhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// InitRedis 建立 redis 连接。未配置 host 时返回 nil,统计缓存自动退化为直查。
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.Host == "" {
		logger.Log.Info("Redis not configured, statistics cache disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	logger.Log.Info("Redis connection established")
	return rdb, nil
}
