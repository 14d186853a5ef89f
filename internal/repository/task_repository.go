package repository

import (
	"time"

	"github.com/suganya-startShine/todo-list-app/internal/models"

	"gorm.io/gorm"
)

// taskListOrder 任务列表的固定排序：
// 状态（进行中、待办、已完成）优先，其次优先级（高、中、低），最后按创建时间倒序
const taskListOrder = `CASE status
		WHEN 'in_progress' THEN 1
		WHEN 'pending' THEN 2
		WHEN 'completed' THEN 3
	END,
	CASE priority
		WHEN 'high' THEN 1
		WHEN 'medium' THEN 2
		WHEN 'low' THEN 3
	END,
	created_at DESC`

// TaskRepository 任务数据访问层
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository 创建任务Repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create 创建任务
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByScope 获取范围内的任务列表（含分类），按固定排序返回
func (r *TaskRepository) ListByScope(scope OwnerScope) ([]models.Task, error) {
	var tasks []models.Task
	err := scope.apply(r.db.Model(&models.Task{})).
		Preload("Category").
		Order(taskListOrder).
		Find(&tasks).Error
	return tasks, err
}

// GetStats 获取范围内的任务统计，无任务时各项计数为0
func (r *TaskRepository) GetStats(scope OwnerScope) (models.TaskStats, error) {
	var stats models.TaskStats
	err := scope.apply(r.db.Model(&models.Task{})).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress`).
		Scan(&stats).Error
	return stats, err
}

// UpdateStatus 更新范围内任务的状态，返回受影响的行数
// 按 (id, 归属范围) 联合匹配，不属于该范围的任务等同于不存在
func (r *TaskRepository) UpdateStatus(scope OwnerScope, id uint, status string, setCompletedAt bool) (int64, error) {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if setCompletedAt {
		updates["completed_at"] = time.Now()
	}

	result := scope.apply(r.db.Model(&models.Task{}).Where("id = ?", id)).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete 删除范围内的任务，返回删除的行数
func (r *TaskRepository) Delete(scope OwnerScope, id uint) (int64, error) {
	result := scope.apply(r.db.Where("id = ?", id)).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}
