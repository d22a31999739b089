package validate

import (
	"encoding/hex"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// BindingValidator 往 gin 内置的 validator 里注册自定义校验规则
// main 启动时调用一次
func BindingValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txhash", TxHash)
	}
}

// TxHash 校验交易哈希格式：0x 开头 + 64 位十六进制
func TxHash(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 66 || !strings.HasPrefix(s, "0x") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}
