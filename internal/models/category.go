package models

import (
	"time"
)

// DefaultCategoryColor 未指定颜色时的默认值
const DefaultCategoryColor = "#667eea"

// Category 任务分类模型
// UserID 为空表示单租户模式下的全局分类
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    *uint     `gorm:"index:idx_user_category_name,unique" json:"user_id,omitempty"`
	Name      string    `gorm:"size:100;not null;index:idx_user_category_name,unique" json:"name"`
	Color     string    `gorm:"size:20;default:'#667eea'" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
