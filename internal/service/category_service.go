package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suganya-startShine/todo-list-app/internal/dto"
	"github.com/suganya-startShine/todo-list-app/internal/models"
	"github.com/suganya-startShine/todo-list-app/internal/repository"
	"github.com/suganya-startShine/todo-list-app/internal/utils"

	"gorm.io/gorm"
)

// standaloneDefaultCategories 单租户模式启动时创建的全局默认分类
var standaloneDefaultCategories = []models.Category{
	{Name: "Work", Color: "#3b82f6"},
	{Name: "Personal", Color: "#10b981"},
	{Name: "Shopping", Color: "#f59e0b"},
	{Name: "Health", Color: "#ef4444"},
	{Name: "Study", Color: "#8b5cf6"},
}

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 获取范围内的分类列表，按名称升序
func (s *CategoryService) List(scope repository.OwnerScope) ([]models.Category, error) {
	return s.categoryRepo.ListByScope(scope)
}

// Create 创建分类
// 颜色为空时使用默认值，同一范围内分类名唯一
func (s *CategoryService) Create(scope repository.OwnerScope, name, color string) (*models.Category, error) {
	form := dto.CategoryForm{Name: strings.TrimSpace(name), Color: strings.TrimSpace(color)}
	if err := utils.ValidateStruct(&form); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	name = form.Name

	color = form.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}

	exists, err := s.categoryRepo.ExistsByName(scope, name)
	if err != nil {
		return nil, fmt.Errorf("检查分类名失败: %w", err)
	}
	if exists {
		return nil, ErrConflict
	}

	category := &models.Category{
		UserID: scope.UserID(),
		Name:   name,
		Color:  color,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}

	return category, nil
}

// Delete 删除范围内的分类，引用它的任务保留且分类引用被置空
func (s *CategoryService) Delete(scope repository.OwnerScope, id uint) error {
	rows, err := s.categoryRepo.Delete(scope, id)
	if err != nil {
		return fmt.Errorf("删除分类失败: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureDefaults 幂等地创建单租户模式的默认分类
func (s *CategoryService) EnsureDefaults(scope repository.OwnerScope) error {
	for _, c := range standaloneDefaultCategories {
		exists, err := s.categoryRepo.ExistsByName(scope, c.Name)
		if err != nil {
			return fmt.Errorf("检查默认分类失败: %w", err)
		}
		if exists {
			continue
		}

		category := models.Category{
			UserID: scope.UserID(),
			Name:   c.Name,
			Color:  c.Color,
		}
		if err := s.categoryRepo.Create(&category); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("创建默认分类失败: %w", err)
		}
	}
	return nil
}
