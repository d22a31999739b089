package routes

import (
	"net/http"

	"counter-backend/api/controllers"
	"counter-backend/api/middlewares"
	"counter-backend/config"

	"github.com/gin-gonic/gin"
)

// InitRoute 注册所有路由
// 路径带版本号前缀，升级接口时旧前端还能继续用老版本
func InitRoute(e *gin.Engine) *gin.Engine {

	// 健康检查，负载均衡探活用
	e.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1Group := e.Group("/api/v" + config.Config.Env.Version)

	// 计数器
	counterController := controllers.CounterController{}
	v1Group.GET("/counter/value", counterController.Value)                // 当前计数值
	v1Group.POST("/counter/value", counterController.Value)               // 同上，POST 方便带 JSON
	v1Group.POST("/counter/increment", counterController.Increment)       // 后端代发 increment 交易
	v1Group.GET("/counter/history", counterController.History)            // 递增事件分页
	v1Group.GET("/counter/txStatus", counterController.TxStatus)          // 交易状态查询
	v1Group.POST("/counter/broadcastRaw", counterController.BroadcastRaw) // 广播前端自己签好的交易
	v1Group.GET("/counter/networkInfo", counterController.NetworkInfo)    // 链配置，前端初始化用

	// 价格
	priceController := controllers.PriceController{}
	v1Group.GET("/price", priceController.EthPrice) // ETH 最新价格

	// WebSocket 长连接，计数值更新实时推送
	wsController := controllers.WsController{}
	v1Group.GET("/ws", wsController.Subscribe)

	// 管理员
	userController := controllers.UserController{}
	v1Group.POST("/user/login", userController.Login)                                   // 登录
	v1Group.POST("/user/logout", middlewares.CheckToken(), userController.Logout)       // 登出
	v1Group.POST("/counter/resync", middlewares.CheckToken(), counterController.Resync) // 强制同步计数值

	return e
}
