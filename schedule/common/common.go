package common

import (
	"counter-backend/log"
	"os"
)

var CounterAdminPrivateKey string

// 从环境变量中读取敏感配置
// export counter_admin_private_key="你的十六进制私钥"
func GetEnv() {

	var ok bool

	CounterAdminPrivateKey, ok = os.LookupEnv("counter_admin_private_key")
	if !ok {
		log.Logger.Error("environment variable is not set")
		panic("environment variable is not set")
	}

}
