package services

import (
	"context"
	"counter-backend/chain"
	"counter-backend/log"
	"counter-backend/schedule/models"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type contractCheck struct{}

func NewContractCheck() *contractCheck {
	return &contractCheck{}
}

// Check 定时核对配置里的合约地址
// 配错地址、链重置、填了个普通账户地址，这些低级错误都能在这里兜住
func (s *contractCheck) Check() {
	for _, net := range chainNets() {
		if net.CounterAddress == "" {
			continue
		}
		if err := s.checkOne(net); err != nil {
			log.Logger.Sugar().Error("contract check err ", net.ChainId, " ", err)
		}
	}
}

func (s *contractCheck) checkOne(net chainNet) error {

	// 1. 地址上真有代码吗
	client, err := chain.DialWithTimeout(net.NetUrl, 20*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	code, err := client.CodeAt(ctx, common.HexToAddress(net.CounterAddress), nil)
	if err != nil {
		return err
	}
	if len(code) == 0 {
		return errors.New("no code at " + net.CounterAddress)
	}

	// 2. 浏览器上的验证状态（没配浏览器 API 就只做第一步）
	if net.ExplorerApi == "" {
		return nil
	}
	url := net.ExplorerApi + "?module=contract&action=getabi&address=" + net.CounterAddress
	httpClient := http.Client{Timeout: 10 * time.Second}
	rsp, err := httpClient.Get(url)
	if err != nil {
		return err
	}
	defer func() {
		_ = rsp.Body.Close()
	}()
	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return err
	}

	abiRsp := models.ExplorerRsp{}
	if err = json.Unmarshal(body, &abiRsp); err != nil {
		return err
	}
	// 没在浏览器上验证过不算错误，教程用户经常跳过验证这一步
	if abiRsp.Status != "1" {
		log.Logger.Sugar().Info("contract not verified on explorer ", net.ChainId, " ", abiRsp.Message)
		return nil
	}

	// 3. 验证过的 ABI 里必须有 increment 和 getCount，不然就是填错了地址
	abiStr, ok := abiRsp.Result.(string)
	if !ok {
		return errors.New("explorer abi result is not a string")
	}
	var abiData []models.AbiData
	if err = json.Unmarshal([]byte(abiStr), &abiData); err != nil {
		return err
	}
	var hasIncrement, hasGetCount bool
	for _, item := range abiData {
		if item.Type != "function" {
			continue
		}
		switch item.Name {
		case "increment":
			hasIncrement = true
		case "getCount":
			hasGetCount = true
		}
	}
	if !hasIncrement || !hasGetCount {
		return errors.New("verified abi missing counter methods, wrong address " + net.CounterAddress)
	}
	return nil
}
