package validate

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CounterHistory struct{}

func NewCounterHistory() *CounterHistory {
	return &CounterHistory{}
}

// CounterHistory 校验分页查询参数
// Page / PageSize 不传时在 service 里取默认值，这里只拦非法值
func (v *CounterHistory) CounterHistory(c *gin.Context, req *request.CounterHistory) int {
	err := c.ShouldBind(req)
	if err == io.EOF {
		return statecode.ParameterEmptyErr
	} else if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return statecode.CommonErrServerErr
		}
		for _, e := range errs {
			if e.Field() == "ChainId" && e.Tag() == "required" {
				return statecode.ChainIdEmpty
			}
			if e.Field() == "Address" && e.Tag() == "eth_addr" {
				return statecode.AddressFormatErr
			}
		}
		return statecode.CommonErrServerErr
	}
	if req.ChainId != 2810 && req.ChainId != 2818 {
		return statecode.ChainIdErr
	}
	// 单页最多100条，负数没有意义
	if req.Page < 0 || req.PageSize < 0 || req.PageSize > 100 {
		return statecode.PageErr
	}
	return statecode.CommonSuccess
}
