package repository

import (
	"gorm.io/gorm"
)

// OwnerScope 数据归属范围
// 多租户模式下为具体用户，单租户模式下为无归属的全局范围，
// 所有分类/任务的读写都必须经由归属范围过滤
type OwnerScope struct {
	userID uint
	scoped bool
}

// ForUser 指定用户的归属范围
func ForUser(userID uint) OwnerScope {
	return OwnerScope{userID: userID, scoped: true}
}

// Shared 单租户模式下的全局范围
func Shared() OwnerScope {
	return OwnerScope{}
}

// UserID 范围内的用户ID，全局范围返回nil
func (s OwnerScope) UserID() *uint {
	if !s.scoped {
		return nil
	}
	id := s.userID
	return &id
}

// apply 把归属范围转换为查询条件
func (s OwnerScope) apply(db *gorm.DB) *gorm.DB {
	if s.scoped {
		return db.Where("user_id = ?", s.userID)
	}
	return db.Where("user_id IS NULL")
}
