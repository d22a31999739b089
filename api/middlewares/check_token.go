package middlewares

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/response"
	"counter-backend/config"
	"counter-backend/db"
	"counter-backend/utils"

	"github.com/gin-gonic/gin"
)

// CheckToken 登录校验中间件，管理接口才挂这个
// 1. 解析请求头里的 JWT
// 2. 和 redis 里保存的令牌比对，登出后 redis 删除，旧令牌立即失效
func CheckToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := response.Gin{Res: c}
		token := c.Request.Header.Get("authCode")
		if token == "" {
			res.Response(c, statecode.TokenErr, nil)
			c.Abort()
			return
		}
		username, err := utils.ParseToken(token, config.Config.Jwt.SecretKey)
		if err != nil {
			res.Response(c, statecode.TokenErr, nil)
			c.Abort()
			return
		}
		redisToken, err := db.RedisGetString(username)
		if err != nil || redisToken != token {
			res.Response(c, statecode.TokenErr, nil)
			c.Abort()
			return
		}
		c.Set("username", username)
		c.Next()
	}
}
