package middleware

import (
	"net/http"

	"github.com/suganya-startShine/todo-list-app/internal/utils"
	"github.com/suganya-startShine/todo-list-app/internal/view"
	"github.com/suganya-startShine/todo-list-app/pkg/sessionstore"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionAuth 会话认证中间件
// 从Cookie解析会话令牌，验证通过后把用户信息写入上下文并刷新令牌（滚动过期）。
// 令牌缺失、无效或已吊销时跳转到登录页。
func SessionAuth(
	sessions *utils.SessionManager,
	revocations *sessionstore.RevocationStore,
	cookieName string,
	logger *logrus.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			redirectToLogin(c, cookieName)
			return
		}

		claims, err := sessions.Parse(tokenString)
		if err != nil {
			redirectToLogin(c, cookieName)
			return
		}

		// 吊销检查失败时放行：Redis故障不应把所有用户登出
		revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.WithError(err).Warn("会话吊销检查失败，跳过")
		}
		if revoked {
			redirectToLogin(c, cookieName)
			return
		}

		// 滚动过期：每次请求重新签发7天有效期的令牌
		refreshed, _, err := sessions.Issue(claims.UserID, claims.Username)
		if err == nil {
			setSessionCookie(c, cookieName, refreshed, int(sessions.ExpireTime().Seconds()))
		} else {
			logger.WithError(err).Warn("刷新会话令牌失败")
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// redirectToLogin 清除会话Cookie并跳转登录页
func redirectToLogin(c *gin.Context, cookieName string) {
	setSessionCookie(c, cookieName, "", -1)
	view.SetFlash(c, "error", "Please log in first")
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

// setSessionCookie 写入会话Cookie
func setSessionCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", "", false, true)
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUsername 从上下文获取用户名
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}
	return username.(string), true
}
