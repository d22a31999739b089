package services

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/response"
	"counter-backend/db"
	"counter-backend/log"
)

type priceService struct{}

func NewPrice() *priceService {
	return &priceService{}
}

// EthPrice 读取 Kucoin 抓取协程缓存在 Redis 的 ETH 现价
// 抓取协程还没跑起来时这里拿不到数据，返回服务器错误让前端稍后再试
func (s *priceService) EthPrice(result *response.EthPrice) int {
	price, err := db.RedisGetString("eth_price")
	if err != nil {
		log.Logger.Sugar().Error("get eth price err ", err)
		return statecode.CommonErrServerErr
	}
	result.Symbol = "ETH-USDT"
	result.Price = price
	return statecode.CommonSuccess
}
