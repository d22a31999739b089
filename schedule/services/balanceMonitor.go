package services

import (
	"context"
	"counter-backend/chain"
	"counter-backend/config"
	"counter-backend/db"
	"counter-backend/log"
	serviceCommon "counter-backend/schedule/common"
	"counter-backend/utils"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

type balanceMonitor struct{}

func NewBalanceMonitor() *balanceMonitor {
	return &balanceMonitor{}
}

// Monitor 检查管理员账户在每条链上的 ETH 余额
// increment 交易的 gas 都从这个账户出，烧干了接口就瘫了，低于阈值发邮件告警
func (s *balanceMonitor) Monitor() {

	// 1. 从私钥推出管理员地址
	key, err := crypto.HexToECDSA(strings.TrimPrefix(serviceCommon.CounterAdminPrivateKey, "0x"))
	if err != nil {
		log.Logger.Error(err.Error())
		return
	}
	adminAddress := crypto.PubkeyToAddress(key.PublicKey)

	threshold, err := decimal.NewFromString(config.Config.Threshold.GasAccountThresholdEth)
	if err != nil {
		log.Logger.Error(err.Error())
		return
	}

	for _, net := range chainNets() {

		// 2. 查余额
		balance, err := s.balance(net, adminAddress)
		if err != nil {
			log.Logger.Sugar().Error("get admin balance err ", net.ChainId, " ", err)
			continue
		}
		ethBalance, err := decimal.NewFromString(utils.WeiToEthStr(balance))
		if err != nil {
			log.Logger.Error(err.Error())
			continue
		}
		if ethBalance.Cmp(threshold) >= 0 {
			continue
		}

		// 3. 低于阈值，发告警邮件；redis 记个一天的标记，不然邮箱会被刷爆
		flagKey := "balance_alert_" + net.ChainId
		if db.RedisExists(flagKey) {
			continue
		}
		body := fmt.Sprintf("admin account %s balance is %s ETH on chain %s, below threshold %s ETH, please top up",
			adminAddress.Hex(), ethBalance.String(), net.ChainId, threshold.String())
		err = utils.SendEmail([]byte(body), 1)
		if err != nil {
			log.Logger.Sugar().Error("send alert email err ", err)
			continue
		}
		_ = db.RedisSetString(flagKey, "1", 86400)
		log.Logger.Sugar().Info("balance alert sent ", net.ChainId, " ", ethBalance.String())
	}
}

func (s *balanceMonitor) balance(net chainNet, address common.Address) (*big.Int, error) {
	client, err := chain.DialWithTimeout(net.NetUrl, 20*time.Second)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.BalanceAt(ctx, address, nil)
}
