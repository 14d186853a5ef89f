package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/suganya-startShine/todo-list-app/internal/dto"
	"github.com/suganya-startShine/todo-list-app/internal/service"
	"github.com/suganya-startShine/todo-list-app/internal/utils"
	"github.com/suganya-startShine/todo-list-app/internal/view"
	"github.com/suganya-startShine/todo-list-app/pkg/sessionstore"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
	sessions    *utils.SessionManager
	revocations *sessionstore.RevocationStore
	cookieName  string
	logger      *logrus.Logger
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(
	authService *service.AuthService,
	sessions *utils.SessionManager,
	revocations *sessionstore.RevocationStore,
	cookieName string,
	logger *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		revocations: revocations,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// Landing 落地页，已登录用户跳转到仪表盘
func (h *AuthHandler) Landing(c *gin.Context) {
	if h.sessionPresent(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Flash": view.TakeFlash(c),
	})
}

// RegisterPage 注册页
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if h.sessionPresent(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.renderRegister(c, view.TakeFlash(c), "")
}

// Register 用户注册
func (h *AuthHandler) Register(c *gin.Context) {
	if h.sessionPresent(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	if username == "" || password == "" {
		h.renderRegister(c, &view.Flash{Category: "error", Message: "Username and password are required"}, username)
		return
	}

	_, err := h.authService.Register(dto.RegisterForm{Username: username, Password: password})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			h.renderRegister(c, &view.Flash{Category: "error", Message: "Username already exists. Please choose another."}, username)
		case errors.Is(err, service.ErrInvalidInput):
			h.renderRegister(c, &view.Flash{Category: "error", Message: validationMessage(err)}, username)
		default:
			h.logger.WithError(err).Error("注册失败")
			h.renderRegister(c, &view.Flash{Category: "error", Message: "Registration failed. Please try again."}, username)
		}
		return
	}

	view.SetFlash(c, "success", "Registration successful! Please log in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// LoginPage 登录页
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if h.sessionPresent(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.renderLogin(c, view.TakeFlash(c), "")
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	if h.sessionPresent(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	if username == "" || password == "" {
		h.renderLogin(c, &view.Flash{Category: "error", Message: "Please enter both username and password"}, username)
		return
	}

	user, err := h.authService.Authenticate(dto.LoginForm{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			h.renderLogin(c, &view.Flash{Category: "error", Message: "Invalid username or password"}, username)
			return
		}
		h.logger.WithError(err).Error("登录失败")
		h.renderLogin(c, &view.Flash{Category: "error", Message: "An error occurred. Please try again."}, username)
		return
	}

	token, _, err := h.sessions.Issue(user.ID, user.Username)
	if err != nil {
		h.logger.WithError(err).Error("签发会话令牌失败")
		h.renderLogin(c, &view.Flash{Category: "error", Message: "An error occurred. Please try again."}, username)
		return
	}

	c.SetCookie(h.cookieName, token, int(h.sessions.ExpireTime().Seconds()), "/", "", false, true)
	view.SetFlash(c, "success", fmt.Sprintf("Welcome back, %s!", user.Username))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout 退出登录
// 无条件清除会话，重复调用也安全；令牌ID写入吊销存储直到自然过期
func (h *AuthHandler) Logout(c *gin.Context) {
	username := "User"

	if tokenString, err := c.Cookie(h.cookieName); err == nil && tokenString != "" {
		if claims, err := h.sessions.Parse(tokenString); err == nil {
			username = claims.Username
			ttl := time.Until(claims.ExpiresAt.Time)
			if err := h.revocations.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
				h.logger.WithError(err).Warn("吊销会话失败")
			}
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	view.SetFlash(c, "success", fmt.Sprintf("Goodbye %s! You have been logged out successfully.", username))
	c.Redirect(http.StatusSeeOther, "/")
}

// sessionPresent 当前请求是否携带有效会话
func (h *AuthHandler) sessionPresent(c *gin.Context) bool {
	tokenString, err := c.Cookie(h.cookieName)
	if err != nil || tokenString == "" {
		return false
	}
	claims, err := h.sessions.Parse(tokenString)
	if err != nil {
		return false
	}
	revoked, err := h.revocations.IsRevoked(c.Request.Context(), claims.ID)
	if err != nil {
		h.logger.WithError(err).Warn("会话吊销检查失败，跳过")
	}
	return !revoked
}

func (h *AuthHandler) renderRegister(c *gin.Context, flash *view.Flash, username string) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Flash":    flash,
		"Username": username,
	})
}

func (h *AuthHandler) renderLogin(c *gin.Context, flash *view.Flash, username string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flash":    flash,
		"Username": username,
	})
}

// validationMessage 提取可展示的验证错误信息
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
