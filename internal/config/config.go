package config

import (
	"fmt"
	"time"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis_service"`
	Session  SessionConfig  `mapstructure:"session"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress 获取服务器地址
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig Redis配置（用于会话吊销存储，可选）
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
}

// GetAddress 获取Redis地址
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled 是否配置了Redis
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

// SessionConfig 会话配置
type SessionConfig struct {
	SecretKey  string `mapstructure:"secret_key"`
	Algorithm  string `mapstructure:"algorithm"`
	ExpireDays int    `mapstructure:"expire_days"`
	CookieName string `mapstructure:"cookie_name"`
}

// GetExpireDuration 获取会话过期时间
func (s *SessionConfig) GetExpireDuration() time.Duration {
	return time.Duration(s.ExpireDays) * 24 * time.Hour
}
