package kucoin

import (
	"context"
	"counter-backend/db"
	"counter-backend/log"
	"time"

	"github.com/Kucoin/kucoin-go-sdk"
)

// 从 Kucoin 实时抓 ETH-USDT 价格
// Morph 上的 gas 用 ETH 结算，前端展示"这次点击花了多少美金"要用这个价

// GetExchangePrice 订阅 Kucoin 行情 WebSocket，把最新价写进 Redis
// 整个函数是死循环：连接断了就从头再来，常驻协程运行
func GetExchangePrice() {
	log.Logger.Info("GetExchangePrice")

	s := kucoin.NewApiService(
		kucoin.ApiBaseURIOption("https://api.kucoin.com"),
	)

	for {
		// 1. 拿公共频道的连接令牌
		rsp, err := s.WebSocketPublicToken(context.Background())
		if err != nil {
			log.Logger.Sugar().Error("get wss token err ", err)
			time.Sleep(10 * time.Second)
			continue
		}
		tk := &kucoin.WebSocketTokenModel{}
		if err = rsp.ReadData(tk); err != nil {
			log.Logger.Sugar().Error("read wss token err ", err)
			time.Sleep(10 * time.Second)
			continue
		}

		// 2. 建立 WebSocket 连接
		c := s.NewWebSocketClient(tk)
		mc, ec, err := c.Connect()
		if err != nil {
			log.Logger.Sugar().Error("wss connect err ", err)
			time.Sleep(10 * time.Second)
			continue
		}

		// 3. 订阅 ETH-USDT 逐笔行情
		ch := kucoin.NewSubscribeMessage("/market/ticker:ETH-USDT", false)
		if err = c.Subscribe(ch); err != nil {
			log.Logger.Sugar().Error("wss subscribe err ", err)
			c.Stop()
			time.Sleep(10 * time.Second)
			continue
		}

	receive:
		for {
			select {
			case err = <-ec:
				log.Logger.Sugar().Error("wss receive err ", err)
				c.Stop()
				break receive
			case msg := <-mc:
				if msg == nil {
					continue
				}
				t := &kucoin.TickerLevel1Model{}
				if err = msg.ReadData(t); err != nil {
					log.Logger.Sugar().Error("read ticker err ", err)
					continue
				}
				if t.Price == "" {
					continue
				}
				// 4. 最新价写 Redis，并发布给 ws 推送
				_ = db.RedisSetString("eth_price", t.Price, 0)
				_ = db.RedisPublish(db.ChanEthPrice, t.Price)
			}
		}
		time.Sleep(3 * time.Second)
	}
}
