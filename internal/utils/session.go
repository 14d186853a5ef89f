package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 会话声明
// ID(jti) 用于登出时在吊销存储中标记该会话失效
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionManager 会话令牌管理器
type SessionManager struct {
	secretKey  []byte
	algorithm  jwt.SigningMethod
	expireTime time.Duration
}

// NewSessionManager 创建会话令牌管理器
func NewSessionManager(secretKey string, algorithm string, expireTime time.Duration) *SessionManager {
	return &SessionManager{
		secretKey:  []byte(secretKey),
		algorithm:  jwt.GetSigningMethod(algorithm),
		expireTime: expireTime,
	}
}

// ExpireTime 会话有效期
func (m *SessionManager) ExpireTime() time.Duration {
	return m.expireTime
}

// Issue 签发会话令牌
func (m *SessionManager) Issue(userID uint, username string) (string, *SessionClaims, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newSessionID(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expireTime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(m.algorithm, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Parse 解析并验证会话令牌
func (m *SessionManager) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != m.algorithm {
			return nil, errors.New("无效的签名算法")
		}
		return m.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("无效的会话令牌")
}

// newSessionID 生成随机会话ID
func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
