package models

import (
	"time"
)

// 优先级枚举
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// 状态枚举
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ValidPriority 检查优先级取值是否合法
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ValidStatus 检查状态取值是否合法
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// Task 任务模型
// UserID 为空表示单租户模式下的全局任务；CategoryID 可空，分类删除后置空
type Task struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      *uint      `gorm:"index" json:"user_id,omitempty"`
	CategoryID  *uint      `gorm:"index" json:"category_id,omitempty"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    string     `gorm:"size:10;default:'medium';check:chk_task_priority,priority IN ('low','medium','high')" json:"priority"`
	Status      string     `gorm:"size:20;default:'pending';index;check:chk_task_status,status IN ('pending','in_progress','completed')" json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// 关联
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

// TableName 指定表名
func (Task) TableName() string {
	return "tasks"
}

// TaskStats 任务统计
type TaskStats struct {
	Total      int64 `gorm:"column:total" json:"total"`
	Completed  int64 `gorm:"column:completed" json:"completed"`
	Pending    int64 `gorm:"column:pending" json:"pending"`
	InProgress int64 `gorm:"column:in_progress" json:"in_progress"`
}
