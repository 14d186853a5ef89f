package dto

import (
	"time"
)

// TaskForm 新建任务输入
// 表单的空字符串分类/截止日期在handler解析阶段归一化为nil
type TaskForm struct {
	Title       string `validate:"required,max=255"`
	Description string
	Priority    string
	CategoryID  *uint
	DueDate     *time.Time
}

// CategoryForm 新建分类输入
type CategoryForm struct {
	Name  string `validate:"required,max=100"`
	Color string
}
