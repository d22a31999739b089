package main

import (
	"counter-backend/api/middlewares"
	"counter-backend/api/models"
	"counter-backend/api/models/kucoin"
	"counter-backend/api/models/ws"
	"counter-backend/api/routes"
	"counter-backend/api/static"
	"counter-backend/api/validate"
	"counter-backend/config"
	"counter-backend/db"

	"github.com/gin-gonic/gin"
)

// 负责协调数据库、验证器、长连接（WebSocket）、价格抓取器以及 Web 路由的启动。
func main() {
	// 1. 初始化存储层：建立 MySQL 和 Redis 的物理连接
	db.InitMysql()
	db.InitRedis()
	// 2. 自动同步数据库表结构：根据 models 定义的 struct 自动创建/更新表
	models.InitTable()

	// 3. 注册验证器：给 gin 挂上自定义校验规则（交易哈希格式等）
	validate.BindingValidator()

	// 4. 启动异步服务（协程）
	// 启动 WebSocket 推送中心，订阅 Redis 频道后实时推给浏览器
	go ws.StartServer()

	// 启动外部交易所价格抓取：从 Kucoin 实时获取 ETH 价格并存入缓存
	go kucoin.GetExchangePrice()

	// 5. 启动 Gin Web 框架
	gin.SetMode(gin.ReleaseMode) // 生产模式：禁用冗余的调试日志
	app := gin.Default()         // 创建默认的 Gin 引擎

	// 6. 配置静态文件服务
	// 计数器前端就一个页面，直接由后端托管，省掉单独的前端部署
	staticPath := static.GetCurrentAbPathByCaller()
	app.StaticFile("/", staticPath+"/index.html")

	// 7. 注入中间件与路由
	app.Use(middlewares.Cors()) // 全局使用跨域中间件
	routes.InitRoute(app)       // 初始化所有 API 路由映射

	// 8. 启动监听：根据配置文件的端口号开启 HTTP 服务
	_ = app.Run(":" + config.Config.Env.Port)

}

/*
 If you change the version, you need to modify the following files'
 config/init.go
*/

// 模块名称,						职责描述,					核心逻辑
// 持久层 (DB/Models),存储中心,MySQL (事件索引/计数快照) + Redis (缓存/JWT/发布订阅)。
// 同步层 (Schedule),链下索引,轮询 Morph 链上计数值，解决直接查链慢、RPC 限频的问题。
// 监听层 (Listener),事件索引,订阅 CounterIncremented 事件，补扫历史区块防漏块。
// 接入层 (Middleware),门户安全,处理跨域、JWT 令牌解析、管理员权限校验。
// 逻辑层 (Service),业务大脑,处理计数读写、签名校验、交易代发、Kucoin 价格换算。
// 交互层 (Web/WS),消息分发,RESTful API 供前端主动拉取，WebSocket 供服务器主动推送。
