package validate

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"encoding/hex"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RawTx struct{}

func NewRawTx() *RawTx {
	return &RawTx{}
}

// RawTx 校验裸交易广播请求
func (v *RawTx) RawTx(c *gin.Context, req *request.RawTx) int {
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
			if e.Field() == "SignedTx" && e.Tag() == "required" {
				return statecode.ParameterEmptyErr
			}
		}
		return statecode.CommonErrServerErr
	}
	if req.ChainId != 2810 && req.ChainId != 2818 {
		return statecode.ChainIdErr
	}
	// RLP 编码的签名交易，必须是合法的十六进制串
	raw := strings.TrimPrefix(req.SignedTx, "0x")
	if raw == "" {
		return statecode.RawTxFormatErr
	}
	if _, decodeErr := hex.DecodeString(raw); decodeErr != nil {
		return statecode.RawTxFormatErr
	}
	return statecode.CommonSuccess
}
