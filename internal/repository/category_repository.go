package repository

import (
	"github.com/suganya-startShine/todo-list-app/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问层
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类Repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create 创建分类
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// ListByScope 获取范围内的分类列表，按名称升序
func (r *CategoryRepository) ListByScope(scope OwnerScope) ([]models.Category, error) {
	var categories []models.Category
	err := scope.apply(r.db.Model(&models.Category{})).Order("name ASC").Find(&categories).Error
	return categories, err
}

// ExistsByName 检查范围内同名分类是否存在
func (r *CategoryRepository) ExistsByName(scope OwnerScope, name string) (bool, error) {
	var count int64
	err := scope.apply(r.db.Model(&models.Category{})).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Delete 删除范围内的分类，返回删除的行数
// 引用该分类的任务由数据库外键置空 category_id，任务本身保留
func (r *CategoryRepository) Delete(scope OwnerScope, id uint) (int64, error) {
	result := scope.apply(r.db.Where("id = ?", id)).Delete(&models.Category{})
	return result.RowsAffected, result.Error
}
