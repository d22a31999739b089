package main

import (
	"context"
	"counter-backend/chain"
	"counter-backend/config"
	"counter-backend/contract"
	"counter-backend/db"
	"counter-backend/log"
	"counter-backend/schedule/models"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// 事件监听进程：实时订阅 CounterIncremented，落库并推送给前端
// API 查库就能出计数值和历史，不用每次请求都去扫链

type counterPush struct {
	ChainId int    `json:"chainId"`
	Value   string `json:"value"`
	TxHash  string `json:"txHash,omitempty"`
}

func main() {

	// ============================
	// 1. 初始化存储
	// ============================
	db.InitMysql()
	db.InitRedis()
	models.InitTable()

	// ============================
	// 2. 每条配好的链起一条流水线
	// ============================
	nets := []struct {
		ChainId        string
		WsUrl          string
		CounterAddress string
	}{
		{config.Config.TestNet.ChainId, config.Config.TestNet.WsUrl, config.Config.TestNet.CounterAddress},
		{config.Config.MainNet.ChainId, config.Config.MainNet.WsUrl, config.Config.MainNet.CounterAddress},
	}
	started := 0
	for _, net := range nets {
		if net.WsUrl == "" || net.CounterAddress == "" {
			continue
		}
		go listen(net.ChainId, net.WsUrl, net.CounterAddress)
		started++
	}
	if started == 0 {
		log.Logger.Fatal("no network configured, set ws_url and counter_address first")
	}

	log.Logger.Info("listener started...")

	// 阻塞
	select {}
}

func listen(chainId, wsUrl, counterAddress string) {

	// ============================
	// 1. 连接链节点（自动重连）
	// ============================
	client := chain.MustDial(wsUrl)

	// ============================
	// 2. 合约地址与事件解码器
	// ============================
	addr := common.HexToAddress(counterAddress)
	filterer, err := contract.NewCounterFilterer(addr, client)
	if err != nil {
		log.Logger.Fatal(err.Error())
	}

	// ============================
	// 3. 获取 CounterIncremented topic
	// ============================
	incrementedTopic := contract.CounterIncrementedTopic()

	// ============================
	// 4. 日志 channel（必须大buffer）
	// ============================
	logs := make(chan types.Log, config.Config.Sync.LogBuffer)

	// ============================
	// 5. 启动 worker池
	// ============================
	chain.StartWorkers(config.Config.Sync.WorkerNum, logs, func(v types.Log) {

		// 只处理 CounterIncremented
		if len(v.Topics) == 0 || v.Topics[0] != incrementedTopic {
			return
		}
		// 重组时节点会把旧日志标成 removed 重发一遍，这种不落库
		if v.Removed {
			return
		}
		handleIncremented(chainId, counterAddress, filterer, v)
	})

	// ============================
	// 6. 历史补扫（生产必须）
	// ============================
	ctx := context.Background()
	latest, err := client.BlockNumber(ctx)
	if err != nil {
		log.Logger.Fatal(err.Error())
	}

	from := config.Config.Sync.StartBlock
	last, err := models.NewChainState().GetLastBlock(chainId)
	if err != nil {
		log.Logger.Fatal(err.Error())
	}
	if last > 0 {
		// 从上次的进度接着扫；往回多退几个确认数，停机期间链上重组过也能纠正，落库是幂等的
		from = last + 1
		if from > config.Config.Sync.Confirmations {
			from -= config.Config.Sync.Confirmations
		}
	}

	log.Logger.Sugar().Info("scan history ", chainId, " ", from, " -> ", latest)

	// 节点对太宽的 eth_getLogs 会直接拒绝，分批扫
	for _, r := range chain.SplitRange(from, latest, config.Config.Sync.BatchSize) {
		if err = chain.ScanHistory(ctx, client, addr, r.From, r.To, logs); err != nil {
			log.Logger.Fatal(err.Error())
		}
	}
	_ = models.NewChainState().SaveLastBlock(chainId, latest)

	// ============================
	// 7. 实时订阅（生产必须）
	// ============================
	chain.SubscribeLoop(ctx, client, addr, logs)
}

func handleIncremented(chainId, counterAddress string, filterer *contract.CounterFilterer, v types.Log) {

	event, err := filterer.ParseCounterIncremented(v)
	if err != nil {
		log.Logger.Sugar().Error("decode fail ", err)
		return
	}

	// 幂等检查
	exists, err := models.NewIncrementEvent().Exists(event.Raw.TxHash.Hex(), event.Raw.Index)
	if err != nil || exists {
		return
	}

	err = models.NewIncrementEvent().Save(&models.IncrementEvent{
		ChainId:     chainId,
		TxHash:      event.Raw.TxHash.Hex(),
		LogIndex:    event.Raw.Index,
		BlockNumber: event.Raw.BlockNumber,
		ByAddress:   event.By.Hex(),
		NewValue:    event.NewValue.String(),
	})
	if err != nil {
		return
	}
	_ = models.NewCounterState().Save(chainId, counterAddress, event.NewValue.String(), event.Raw.BlockNumber)
	_ = models.NewChainState().SaveLastBlock(chainId, event.Raw.BlockNumber)

	// 清 API 缓存并广播，前端页面的数字跟着跳
	chainIdInt, _ := strconv.Atoi(chainId)
	_, _ = db.RedisDelete(fmt.Sprintf("counter_value_%d", chainIdInt))
	_ = db.RedisPublish(db.ChanCounterUpdate, counterPush{
		ChainId: chainIdInt,
		Value:   event.NewValue.String(),
		TxHash:  event.Raw.TxHash.Hex(),
	})

	log.Logger.Sugar().Info("CounterIncremented ", chainId, " ",
		event.By.Hex(), " -> ", event.NewValue.String())
}
