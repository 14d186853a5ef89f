package view

import (
	"embed"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates 解析嵌入的页面模板
// 模板是 (任务, 分类, 统计) 到HTML的纯函数，派生展示状态都在FuncMap里计算
func Templates() *template.Template {
	funcMap := template.FuncMap{
		// statusBadge 状态徽标文本，下划线渲染为空格（in_progress -> "in progress"）
		"statusBadge": func(status string) string {
			return strings.ReplaceAll(status, "_", " ")
		},
		// formatDate 截止日期格式 YYYY-MM-DD
		"formatDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("2006-01-02")
		},
		// formatDateTime 创建时间格式 YYYY-MM-DD HH:MM
		"formatDateTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
	}
	return template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html"))
}
