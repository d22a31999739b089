package chain

import (
	"context"
	"time"

	"counter-backend/log"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// 实时订阅（自动重连），ctx 结束才返回
// client 必须走 websocket，http 节点不支持 eth_subscribe
func SubscribeLoop(ctx context.Context, client *ethclient.Client, addr common.Address, out chan<- types.Log) {
	q := ethereum.FilterQuery{Addresses: []common.Address{addr}}
	for {
		if ctx.Err() != nil {
			return
		}
		ch := make(chan types.Log)
		sub, err := client.SubscribeFilterLogs(ctx, q, ch)
		if err != nil {
			log.Logger.Error("log subscribe", zap.String("address", addr.Hex()), zap.Error(err))
			select {
			case <-time.After(3 * time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}
		log.Logger.Info("log subscription open", zap.String("address", addr.Hex()))
	recv:
		for {
			select {
			case err := <-sub.Err():
				log.Logger.Error("log subscription dropped", zap.Error(err))
				break recv
			case l := <-ch:
				select {
				case out <- l:
				case <-ctx.Done():
					sub.Unsubscribe()
					return
				}
			case <-ctx.Done():
				sub.Unsubscribe()
				return
			}
		}
	}
}
