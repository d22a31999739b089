package validate

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CounterIncrement struct{}

func NewCounterIncrement() *CounterIncrement {
	return &CounterIncrement{}
}

// CounterIncrement 校验自增请求
// Address、Signature、SignedAt 要么都传要么都不传，缺一个都没法验签
func (v *CounterIncrement) CounterIncrement(c *gin.Context, req *request.CounterIncrement) int {
	err := c.ShouldBindJSON(req)
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
	if (req.Address == "") != (req.Signature == "") {
		return statecode.SignatureErr
	}
	if req.Address != "" && req.SignedAt <= 0 {
		return statecode.SignatureErr
	}
	return statecode.CommonSuccess
}
