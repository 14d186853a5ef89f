package main

import (
	"log"
	"os"

	"github.com/suganya-startShine/todo-list-app/internal/config"
	"github.com/suganya-startShine/todo-list-app/internal/models"
	"github.com/suganya-startShine/todo-list-app/internal/repository"
	"github.com/suganya-startShine/todo-list-app/internal/router"
	"github.com/suganya-startShine/todo-list-app/internal/service"

	"github.com/sirupsen/logrus"
)

// 单租户模式：无认证，单一共享任务列表
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

	// 幂等创建全局默认分类
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(db))
	if err := categoryService.EnsureDefaults(repository.Shared()); err != nil {
		log.Fatalf("创建默认分类失败: %v", err)
	}

	// 设置路由
	r := router.SetupStandalone(cfg, logger, db)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
