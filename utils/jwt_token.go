package utils

import (
	"counter-backend/config"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// 签发令牌
// 过期时间从配置读取，和 Redis 登录态的 TTL 保持一致
func CreateToken(username string) (string, error) {
	at := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(time.Duration(config.Config.Jwt.ExpireTime) * time.Second).Unix(),
	})
	//HS256 对令牌加密
	token, err := at.SignedString([]byte(config.Config.Jwt.SecretKey))
	if err != nil {
		return "", err
	}
	return token, nil
}

// 解析令牌
func ParseToken(token string, secret string) (string, error) {
	claim, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}) // 接收 验证
	if err != nil {
		return "", err
	}
	username, ok := claim.Claims.(jwt.MapClaims)["username"].(string)
	if !ok {
		return "", jwt.NewValidationError("username claim missing", jwt.ValidationErrorClaimsInvalid)
	}
	return username, nil
}
