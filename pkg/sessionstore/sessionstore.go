package sessionstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RevocationStore 基于Redis的会话吊销存储
// 登出时把会话ID写入Redis并保留到令牌自然过期，认证中间件据此拒绝已登出的会话。
// client 为 nil 时所有操作为空操作（未配置Redis的部署模式）。
type RevocationStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRevocationStore 创建会话吊销存储
func NewRevocationStore(client *redis.Client, keyPrefix string) *RevocationStore {
	return &RevocationStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Revoke 吊销会话，ttl 为令牌剩余有效期
func (rs *RevocationStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if rs == nil || rs.client == nil || sessionID == "" {
		return nil
	}
	if ttl <= 0 {
		return nil // 令牌已过期，无需记录
	}

	if err := rs.client.Set(ctx, rs.keyPrefix+sessionID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("写入会话吊销记录失败: %w", err)
	}
	return nil
}

// IsRevoked 检查会话是否已被吊销
func (rs *RevocationStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	if rs == nil || rs.client == nil || sessionID == "" {
		return false, nil
	}

	n, err := rs.client.Exists(ctx, rs.keyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("查询会话吊销记录失败: %w", err)
	}
	return n > 0, nil
}
