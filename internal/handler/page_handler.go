package handler

import (
	"net/http"

	"github.com/suganya-startShine/todo-list-app/internal/middleware"
	"github.com/suganya-startShine/todo-list-app/internal/models"
	"github.com/suganya-startShine/todo-list-app/internal/repository"
	"github.com/suganya-startShine/todo-list-app/internal/service"
	"github.com/suganya-startShine/todo-list-app/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PageHandler 页面处理器（仪表盘 / 单租户首页）
type PageHandler struct {
	taskService     *service.TaskService
	categoryService *service.CategoryService
	logger          *logrus.Logger
}

// NewPageHandler 创建页面处理器
func NewPageHandler(taskService *service.TaskService, categoryService *service.CategoryService, logger *logrus.Logger) *PageHandler {
	return &PageHandler{
		taskService:     taskService,
		categoryService: categoryService,
		logger:          logger,
	}
}

// Dashboard 用户仪表盘
func (h *PageHandler) Dashboard(c *gin.Context) {
	username, _ := middleware.GetUsername(c)
	data := h.boardData(c, scopeOf(c))
	data["Username"] = username
	c.HTML(http.StatusOK, "dashboard.html", data)
}

// Index 单租户模式首页
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.boardData(c, repository.Shared()))
}

// boardData 组装任务看板数据
// 加载失败时仍渲染空看板并附带错误提示，不向用户抛原始错误
func (h *PageHandler) boardData(c *gin.Context, scope repository.OwnerScope) gin.H {
	flash := view.TakeFlash(c)

	tasks, err := h.taskService.List(scope)
	if err == nil {
		var categories []models.Category
		categories, err = h.categoryService.List(scope)
		if err == nil {
			var stats models.TaskStats
			stats, err = h.taskService.Stats(scope)
			if err == nil {
				return gin.H{
					"Flash":      flash,
					"Tasks":      tasks,
					"Categories": categories,
					"Stats":      stats,
				}
			}
		}
	}

	h.logger.WithError(err).Error("加载看板数据失败")
	return gin.H{
		"Flash":      &view.Flash{Category: "error", Message: "Error loading dashboard"},
		"Tasks":      []models.Task{},
		"Categories": []models.Category{},
		"Stats":      models.TaskStats{},
	}
}

// scopeOf 解析当前请求的数据归属范围
// 认证中间件写入了用户ID则按用户过滤，否则为单租户全局范围
func scopeOf(c *gin.Context) repository.OwnerScope {
	if userID, ok := middleware.GetUserID(c); ok {
		return repository.ForUser(userID)
	}
	return repository.Shared()
}
