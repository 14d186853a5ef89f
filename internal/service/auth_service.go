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

// defaultCategories 注册时为新用户创建的默认分类
var defaultCategories = []models.Category{
	{Name: "Work", Color: "#667eea"},
	{Name: "Personal", Color: "#48bb78"},
	{Name: "Shopping", Color: "#f59e0b"},
	{Name: "Health", Color: "#ef4444"},
}

// AuthService 认证服务
type AuthService struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
}

// NewAuthService 创建认证服务
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:       db,
		userRepo: repository.NewUserRepository(db),
	}
}

// Register 用户注册
// 用户行和默认分类在同一事务内创建，任一步失败则整体回滚
func (s *AuthService) Register(form dto.RegisterForm) (*models.User, error) {
	username := strings.TrimSpace(form.Username)
	password := strings.TrimSpace(form.Password)

	form = dto.RegisterForm{Username: username, Password: password}
	if err := utils.ValidateStruct(&form); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	exists, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return nil, ErrConflict
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).Create(user); err != nil {
			return err
		}

		categoryRepo := repository.NewCategoryRepository(tx)
		for _, c := range defaultCategories {
			category := models.Category{
				UserID: &user.ID,
				Name:   c.Name,
				Color:  c.Color,
			}
			if err := categoryRepo.Create(&category); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// 用户名唯一约束由存储层兜底，并发注册同名用户时在此捕获
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// Authenticate 验证用户凭据
// 用户不存在和密码错误返回同一个错误，不泄露用户是否存在
func (s *AuthService) Authenticate(form dto.LoginForm) (*models.User, error) {
	username := strings.TrimSpace(form.Username)
	password := strings.TrimSpace(form.Password)

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	if err := utils.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, ErrBadCredentials
	}

	return user, nil
}
