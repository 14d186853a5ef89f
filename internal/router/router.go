package router

import (
	"net/http"

	"github.com/suganya-startShine/todo-list-app/internal/config"
	"github.com/suganya-startShine/todo-list-app/internal/handler"
	"github.com/suganya-startShine/todo-list-app/internal/middleware"
	"github.com/suganya-startShine/todo-list-app/internal/repository"
	"github.com/suganya-startShine/todo-list-app/internal/service"
	"github.com/suganya-startShine/todo-list-app/internal/utils"
	"github.com/suganya-startShine/todo-list-app/internal/view"
	"github.com/suganya-startShine/todo-list-app/pkg/sessionstore"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Setup 设置多租户模式路由
func Setup(
	cfg *config.Config,
	sessions *utils.SessionManager,
	revocations *sessionstore.RevocationStore,
	logger *logrus.Logger,
	db *gorm.DB,
) *gin.Engine {
	r := newEngine(cfg, logger)

	// 初始化Repository
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// 初始化Service
	authService := service.NewAuthService(db)
	taskService := service.NewTaskService(taskRepo, false)
	categoryService := service.NewCategoryService(categoryRepo)

	// 初始化Handler
	cookieName := cfg.Session.CookieName
	authHandler := handler.NewAuthHandler(authService, sessions, revocations, cookieName, logger)
	pageHandler := handler.NewPageHandler(taskService, categoryService, logger)
	taskHandler := handler.NewTaskHandler(taskService, "/dashboard", logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, "/dashboard", logger)

	// 公开路由
	r.GET("/", authHandler.Landing)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	// 登出无条件清除会话，不要求有效会话（幂等）
	r.GET("/logout", authHandler.Logout)

	// 认证路由
	authorized := r.Group("")
	authorized.Use(middleware.SessionAuth(sessions, revocations, cookieName, logger))
	{
		authorized.GET("/dashboard", pageHandler.Dashboard)
		authorized.POST("/add", taskHandler.Add)
		authorized.POST("/update/:id", taskHandler.Update)
		authorized.POST("/delete/:id", taskHandler.Delete)
		authorized.POST("/add_category", categoryHandler.Add)
	}

	return r
}

// SetupStandalone 设置单租户模式路由（无认证，单一共享任务列表）
func SetupStandalone(cfg *config.Config, logger *logrus.Logger, db *gorm.DB) *gin.Engine {
	r := newEngine(cfg, logger)

	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// 单租户模式记录任务完成时间
	taskService := service.NewTaskService(taskRepo, true)
	categoryService := service.NewCategoryService(categoryRepo)

	pageHandler := handler.NewPageHandler(taskService, categoryService, logger)
	taskHandler := handler.NewTaskHandler(taskService, "/", logger)

	r.GET("/", pageHandler.Index)
	r.POST("/add", taskHandler.Add)
	r.POST("/update/:id", taskHandler.Update)
	r.POST("/delete/:id", taskHandler.Delete)

	return r
}

// newEngine 创建带公共中间件和模板的引擎
func newEngine(cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		logger.WithField("error", err).Error("请求处理发生panic")
		c.HTML(http.StatusInternalServerError, "500.html", nil)
	}))

	r.SetHTMLTemplate(view.Templates())

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", nil)
	})

	return r
}
