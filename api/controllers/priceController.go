package controllers

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/response"
	"counter-backend/api/services"

	"github.com/gin-gonic/gin"
)

type PriceController struct {
}

// EthPrice 返回 Redis 里缓存的 ETH 现价（Kucoin 抓取协程负责更新）
func (c *PriceController) EthPrice(ctx *gin.Context) {
	res := response.Gin{Res: ctx}
	result := response.EthPrice{}

	errCode := services.NewPrice().EthPrice(&result)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	res.Response(ctx, statecode.CommonSuccess, result)
	return
}
