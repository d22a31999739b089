package validate

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type TxStatus struct{}

func NewTxStatus() *TxStatus {
	return &TxStatus{}
}

// TxStatus 校验交易状态查询参数
func (v *TxStatus) TxStatus(c *gin.Context, req *request.TxStatus) int {
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
			if e.Field() == "TxHash" && e.Tag() == "required" {
				return statecode.ParameterEmptyErr
			}
			// txhash 是 validate.TxHash 注册的自定义规则
			if e.Field() == "TxHash" && e.Tag() == "txhash" {
				return statecode.TxHashFormatErr
			}
		}
		return statecode.CommonErrServerErr
	}
	if req.ChainId != 2810 && req.ChainId != 2818 {
		return statecode.ChainIdErr
	}
	return statecode.CommonSuccess
}
