package config

import (
	"os"
	"path"
	"runtime"

	"github.com/BurntSushi/toml"
)

// init 在包加载时读取 config.toml
// 各个服务（api/ schedule/ listener/）启动目录不同，所以用 runtime.Caller
// 定位到本源码文件所在目录，保证在哪里启动都能找到配置。
// 环境变量 COUNTER_BACKEND_CONFIG 可以覆盖配置文件路径
func init() {
	file := os.Getenv("COUNTER_BACKEND_CONFIG")
	if file == "" {
		_, current, _, _ := runtime.Caller(0)
		file = path.Join(path.Dir(current), "config.toml")
	}
	Config = &Conf{}
	if _, err := toml.DecodeFile(file, Config); err != nil {
		panic("read config file err: " + err.Error())
	}
}
