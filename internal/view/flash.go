package view

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookie = "todo_flash"

// Flash 跨重定向传递的一次性页面提示
type Flash struct {
	Message  string `json:"m"`
	Category string `json:"c"` // success / error
}

// SetFlash 写入页面提示，在下一次渲染时展示并清除
func SetFlash(c *gin.Context, category, message string) {
	payload, err := json.Marshal(Flash{Message: message, Category: category})
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(payload)
	c.SetCookie(flashCookie, encoded, 60, "/", "", false, true)
}

// TakeFlash 读取并清除页面提示，没有提示时返回nil
func TakeFlash(c *gin.Context) *Flash {
	encoded, err := c.Cookie(flashCookie)
	if err != nil || encoded == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(payload, &flash); err != nil {
		return nil
	}
	return &flash
}
