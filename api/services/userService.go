package services

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"counter-backend/api/models/response"
	"counter-backend/config"
	"counter-backend/db"
	"counter-backend/log"
	"counter-backend/utils"
)

type userService struct{}

func NewUser() *userService {
	return &userService{}
}

// Login 管理员登录
// 配置里存的是密码的 md5，比对通过后签发 JWT 并把登录态写进 Redis，
// CheckToken 中间件靠 Redis 里这条记录判断令牌有没有被注销
func (s *userService) Login(req *request.Login, result *response.Login) int {
	if req.Name != config.Config.DefaultAdmin.Username ||
		utils.Md5(req.Password) != config.Config.DefaultAdmin.Password {
		return statecode.NameOrPasswordErr
	}

	token, err := utils.CreateToken(req.Name)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.CommonErrServerErr
	}
	// 过期时间和 JWT 一致，令牌自然过期后 Redis 的记录也消失
	err = db.RedisSetString(req.Name, token, config.Config.Jwt.ExpireTime)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.CommonErrServerErr
	}

	result.Token = token
	return statecode.CommonSuccess
}
