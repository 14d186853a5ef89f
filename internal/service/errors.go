package service

import (
	"errors"
)

// 业务错误分类，handler层通过 errors.Is 判定并转换为页面提示。
// 其余未分类的错误一律按存储故障处理，向用户展示通用提示。
var (
	// ErrInvalidInput 输入缺失或不合法
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict 唯一性冲突（用户名或分类名已存在）
	ErrConflict = errors.New("already exists")
	// ErrBadCredentials 用户名或密码错误
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrNotFound 目标不存在或不属于当前范围，二者对外不可区分
	ErrNotFound = errors.New("not found")
)
