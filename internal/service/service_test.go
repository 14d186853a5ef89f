package service

import (
	"path/filepath"
	"testing"

	"github.com/suganya-startShine/todo-list-app/internal/dto"
	"github.com/suganya-startShine/todo-list-app/internal/models"

	"gorm.io/gorm"
)

// newTestDB 打开临时数据库并迁移表结构
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := models.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	return db
}

// registerUser 注册测试用户
func registerUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()

	user, err := NewAuthService(db).Register(dto.RegisterForm{Username: username, Password: password})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}
