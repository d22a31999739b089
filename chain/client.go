// Package chain 封装各服务共用的节点访问：自动重连、历史补扫、实时订阅
package chain

import (
	"context"
	"time"

	"counter-backend/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// 自动重连client（常驻服务启动时用，连不上链什么都干不了）
func MustDial(url string) *ethclient.Client {
	for {
		c, err := ethclient.Dial(url)
		if err == nil {
			return c
		}
		log.Logger.Error("chain dial retry", zap.String("url", url), zap.Error(err))
		time.Sleep(3 * time.Second)
	}
}

// DialWithTimeout 只拨一次，快速失败（API 请求和 CLI 用这个）
func DialWithTimeout(url string, timeout time.Duration) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	c, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", url)
	}
	return c, nil
}
