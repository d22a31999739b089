package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 全局日志对象，所有服务共用
var Logger *zap.Logger

func init() {
	Logger = newLogger("logs/counter-backend.log")
}

// newLogger 初始化 zap
// 文件端：JSON 格式 + lumberjack 按大小切割归档
// 控制台端：带颜色的可读格式，方便本地开发
func newLogger(filename string) *zap.Logger {
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    128, // 单个日志文件最大 MB
		MaxBackups: 30,  // 最多保留的旧文件个数
		MaxAge:     30,  // 旧文件最多保留天数
		Compress:   true,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleEncCfg := zap.NewDevelopmentEncoderConfig()
	consoleEncCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	// 默认 Info 级别，设置 COUNTER_BACKEND_DEBUG 后打开 Debug
	level := zapcore.InfoLevel
	if os.Getenv("COUNTER_BACKEND_DEBUG") != "" {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncCfg), zapcore.AddSync(os.Stdout), level),
	)

	// AddCaller 让每条日志带上 文件:行号
	return zap.New(core, zap.AddCaller())
}
