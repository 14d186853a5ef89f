package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/suganya-startShine/todo-list-app/internal/service"
	"github.com/suganya-startShine/todo-list-app/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	categoryService *service.CategoryService
	redirectTo      string
	logger          *logrus.Logger
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(categoryService *service.CategoryService, redirectTo string, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		redirectTo:      redirectTo,
		logger:          logger,
	}
}

// Add 新建分类
func (h *CategoryHandler) Add(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	color := c.PostForm("color")

	if name == "" {
		view.SetFlash(c, "error", "Category name is required")
		c.Redirect(http.StatusSeeOther, h.redirectTo)
		return
	}

	if _, err := h.categoryService.Create(scopeOf(c), name, color); err != nil {
		if errors.Is(err, service.ErrConflict) {
			view.SetFlash(c, "error", "Category already exists")
		} else {
			h.logger.WithError(err).Error("新建分类失败")
			view.SetFlash(c, "error", "Failed to add category")
		}
		c.Redirect(http.StatusSeeOther, h.redirectTo)
		return
	}

	view.SetFlash(c, "success", "Category added successfully!")
	c.Redirect(http.StatusSeeOther, h.redirectTo)
}
