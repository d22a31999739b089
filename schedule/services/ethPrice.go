package services

import (
	"counter-backend/db"
	"counter-backend/log"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

type ethPrice struct{}

func NewEthPrice() *ethPrice {
	return &ethPrice{}
}

const kucoinTickerUrl = "https://api.kucoin.com/api/v1/market/orderbook/level1?symbol=ETH-USDT"

// UpdateEthPrice 从 Kucoin REST 接口拉一次 ETH 现价
// API 进程里有 WebSocket 实时流，这里是兜底：那边断了价格也不会一直停在旧值
func (s *ethPrice) UpdateEthPrice() {
	client := http.Client{Timeout: 10 * time.Second}
	rsp, err := client.Get(kucoinTickerUrl)
	if err != nil {
		log.Logger.Sugar().Error("get eth price err ", err)
		return
	}
	defer func() {
		_ = rsp.Body.Close()
	}()
	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		log.Logger.Sugar().Error("read eth price body err ", err)
		return
	}

	// 响应格式 {"code":"200000","data":{"price":"..."}}
	price := gjson.GetBytes(body, "data.price").String()
	if price == "" {
		log.Logger.Sugar().Error("eth price rsp invalid ", string(body))
		return
	}
	_ = db.RedisSetString("eth_price", price, 0)
	_ = db.RedisPublish(db.ChanEthPrice, price)
}
