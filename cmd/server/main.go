package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/suganya-startShine/todo-list-app/internal/config"
	"github.com/suganya-startShine/todo-list-app/internal/models"
	"github.com/suganya-startShine/todo-list-app/internal/router"
	"github.com/suganya-startShine/todo-list-app/internal/utils"
	"github.com/suganya-startShine/todo-list-app/pkg/sessionstore"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化数据库
	db, err := models.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("迁移数据库失败: %v", err)
	}

	// 初始化Redis（会话吊销存储，未配置时登出仅清除Cookie）
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("Redis连接失败，会话吊销不可用: %v", err)
		}
	} else {
		logger.Info("未配置Redis，会话吊销存储已禁用")
	}

	// 初始化会话管理
	sessions := utils.NewSessionManager(
		cfg.Session.SecretKey,
		cfg.Session.Algorithm,
		cfg.Session.GetExpireDuration(),
	)
	revocations := sessionstore.NewRevocationStore(redisClient, "todo:session:revoked:")

	// 设置路由
	r := router.Setup(cfg, sessions, revocations, logger, db)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
