package validate

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type User struct{}

func NewUser() *User {
	return &User{}
}

// Login 校验登录参数：用户名密码都不能为空
func (v *User) Login(c *gin.Context, req *request.Login) int {
	err := c.ShouldBindJSON(req)
	if err == io.EOF {
		return statecode.ParameterEmptyErr
	} else if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return statecode.CommonErrServerErr
		}
		for _, e := range errs {
			if e.Field() == "Name" && e.Tag() == "required" {
				return statecode.NameOrPasswordErr
			}
			if e.Field() == "Password" && e.Tag() == "required" {
				return statecode.NameOrPasswordErr
			}
		}
		return statecode.CommonErrServerErr
	}
	return statecode.CommonSuccess
}
