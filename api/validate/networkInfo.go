package validate

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type NetworkInfo struct{}

func NewNetworkInfo() *NetworkInfo {
	return &NetworkInfo{}
}

// NetworkInfo 校验网络信息查询参数
func (v *NetworkInfo) NetworkInfo(c *gin.Context, req *request.NetworkInfo) int {
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
		}
		return statecode.CommonErrServerErr
	}
	if req.ChainId != 2810 && req.ChainId != 2818 {
		return statecode.ChainIdErr
	}
	return statecode.CommonSuccess
}
