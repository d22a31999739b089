package validate

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CounterValue 定义计数值查询验证结构体
type CounterValue struct{}

// NewCounterValue 初始化验证器
func NewCounterValue() *CounterValue {
	return &CounterValue{}
}

// CounterValue 执行具体的参数校验逻辑
func (v *CounterValue) CounterValue(c *gin.Context, req *request.CounterValue) int {
	// 1. 把 Query 或 JSON 参数绑定到结构体
	err := c.ShouldBind(req)
	// 2. 请求体完全为空
	if err == io.EOF {
		return statecode.ParameterEmptyErr
	} else if err != nil {
		// 3. 字段校验失败，遍历具体的验证错误
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return statecode.CommonErrServerErr
		}
		for _, e := range errs {
			if e.Field() == "ChainId" && e.Tag() == "required" {
				return statecode.ChainIdEmpty
			}
		}
		return statecode.CommonErrServerErr
	}
	// 4. 业务边界校验
	// 2810: Morph Holesky 测试网
	// 2818: Morph 主网
	if req.ChainId != 2810 && req.ChainId != 2818 {
		return statecode.ChainIdErr
	}
	return statecode.CommonSuccess
}
