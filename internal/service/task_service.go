package service

import (
	"fmt"
	"strings"

	"github.com/suganya-startShine/todo-list-app/internal/dto"
	"github.com/suganya-startShine/todo-list-app/internal/models"
	"github.com/suganya-startShine/todo-list-app/internal/repository"
	"github.com/suganya-startShine/todo-list-app/internal/utils"
)

// TaskService 任务服务
// trackCompletion 开启后，任务状态变为已完成时记录 completed_at（单租户模式）
type TaskService struct {
	taskRepo        *repository.TaskRepository
	trackCompletion bool
}

// NewTaskService 创建任务服务
func NewTaskService(taskRepo *repository.TaskRepository, trackCompletion bool) *TaskService {
	return &TaskService{
		taskRepo:        taskRepo,
		trackCompletion: trackCompletion,
	}
}

// List 获取范围内的任务列表（含分类），按固定排序返回
func (s *TaskService) List(scope repository.OwnerScope) ([]models.Task, error) {
	return s.taskRepo.ListByScope(scope)
}

// Stats 获取范围内的任务统计
func (s *TaskService) Stats(scope repository.OwnerScope) (models.TaskStats, error) {
	return s.taskRepo.GetStats(scope)
}

// Create 创建任务，状态固定初始化为待办
func (s *TaskService) Create(scope repository.OwnerScope, form dto.TaskForm) (*models.Task, error) {
	form.Title = strings.TrimSpace(form.Title)
	if err := utils.ValidateStruct(&form); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	priority := form.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, priority)
	}

	task := &models.Task{
		UserID:      scope.UserID(),
		CategoryID:  form.CategoryID,
		Title:       form.Title,
		Description: strings.TrimSpace(form.Description),
		Priority:    priority,
		Status:      models.StatusPending,
		DueDate:     form.DueDate,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("创建任务失败: %w", err)
	}

	return task, nil
}

// UpdateStatus 更新范围内任务的状态
// 状态转换不做顺序约束，三个合法值之间可任意切换
func (s *TaskService) UpdateStatus(scope repository.OwnerScope, id uint, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	setCompletedAt := s.trackCompletion && status == models.StatusCompleted
	rows, err := s.taskRepo.UpdateStatus(scope, id, status, setCompletedAt)
	if err != nil {
		return fmt.Errorf("更新任务状态失败: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 删除范围内的任务
func (s *TaskService) Delete(scope repository.OwnerScope, id uint) error {
	rows, err := s.taskRepo.Delete(scope, id)
	if err != nil {
		return fmt.Errorf("删除任务失败: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
