package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/suganya-startShine/todo-list-app/internal/dto"
	"github.com/suganya-startShine/todo-list-app/internal/models"
	"github.com/suganya-startShine/todo-list-app/internal/service"
	"github.com/suganya-startShine/todo-list-app/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TaskHandler 任务处理器
// redirectTo 为操作完成后的跳转地址（多租户为 /dashboard，单租户为 /）
type TaskHandler struct {
	taskService *service.TaskService
	redirectTo  string
	logger      *logrus.Logger
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(taskService *service.TaskService, redirectTo string, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		redirectTo:  redirectTo,
		logger:      logger,
	}
}

// Add 新建任务
func (h *TaskHandler) Add(c *gin.Context) {
	form, err := parseTaskForm(c)
	if err != nil {
		view.SetFlash(c, "error", "Invalid due date")
		h.redirect(c)
		return
	}

	if strings.TrimSpace(form.Title) == "" {
		view.SetFlash(c, "error", "Task title is required")
		h.redirect(c)
		return
	}

	if _, err := h.taskService.Create(scopeOf(c), form); err != nil {
		h.logger.WithError(err).Error("新建任务失败")
		view.SetFlash(c, "error", "Failed to add task")
		h.redirect(c)
		return
	}

	view.SetFlash(c, "success", "Task added successfully!")
	h.redirect(c)
}

// Update 更新任务状态
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		view.SetFlash(c, "error", "Task not found")
		h.redirect(c)
		return
	}

	status := c.PostForm("status")
	if status == "" {
		status = models.StatusPending
	}

	if err := h.taskService.UpdateStatus(scopeOf(c), id, status); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			view.SetFlash(c, "error", "Task not found")
		case errors.Is(err, service.ErrInvalidInput):
			view.SetFlash(c, "error", "Failed to update task")
		default:
			h.logger.WithError(err).Error("更新任务状态失败")
			view.SetFlash(c, "error", "Failed to update task")
		}
		h.redirect(c)
		return
	}

	view.SetFlash(c, "success", "Task status updated!")
	h.redirect(c)
}

// Delete 删除任务
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		view.SetFlash(c, "error", "Task not found")
		h.redirect(c)
		return
	}

	if err := h.taskService.Delete(scopeOf(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			view.SetFlash(c, "error", "Task not found")
		} else {
			h.logger.WithError(err).Error("删除任务失败")
			view.SetFlash(c, "error", "Failed to delete task")
		}
		h.redirect(c)
		return
	}

	view.SetFlash(c, "success", "Task deleted successfully!")
	h.redirect(c)
}

func (h *TaskHandler) redirect(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, h.redirectTo)
}

// parseTaskForm 把表单字段解析为带类型的任务输入
// 空字符串的分类和截止日期归一化为nil
func parseTaskForm(c *gin.Context) (dto.TaskForm, error) {
	form := dto.TaskForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
	}

	if raw := c.PostForm("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			form.CategoryID = &categoryID
		}
	}

	if raw := c.PostForm("due_date"); raw != "" {
		due, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return form, err
		}
		form.DueDate = &due
	}

	return form, nil
}

// parseID 解析路径中的任务/分类ID
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
