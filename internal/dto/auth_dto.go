package dto

// RegisterForm 注册表单（字段在绑定后已去除首尾空白）
type RegisterForm struct {
	Username string `form:"username" validate:"required,min=3,max=50"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginForm 登录表单
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
