package static

import (
	"path"
	"runtime"
)

// GetCurrentAbPathByCaller 拿到本文件所在目录的绝对路径
// 前端页面和二进制不在同一个工作目录下启动时，相对路径会找不到文件
func GetCurrentAbPathByCaller() string {
	var abPath string
	_, filename, _, ok := runtime.Caller(0)
	if ok {
		abPath = path.Dir(filename)
	}
	return abPath
}
