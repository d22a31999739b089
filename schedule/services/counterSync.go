package services

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
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// chainNet 每条链的节点和合约配置，services 内部统一用它
type chainNet struct {
	ChainId        string
	NetUrl         string
	CounterAddress string
	ExplorerApi    string
}

func chainNets() []chainNet {
	t := config.Config.TestNet
	m := config.Config.MainNet
	return []chainNet{
		{t.ChainId, t.NetUrl, t.CounterAddress, t.ExplorerApi},
		{m.ChainId, m.NetUrl, m.CounterAddress, m.ExplorerApi},
	}
}

type counterSync struct{}

func NewCounterSync() *counterSync {
	return &counterSync{}
}

// SyncCounterValue 轮询每条链的 getCount，变了就落库并广播
// listener 的事件推送是主路，这里是兜底：节点抽风漏了事件，下个周期也能追平
func (s *counterSync) SyncCounterValue() {
	for _, net := range chainNets() {
		// 合约地址没配说明这条链还没部署，跳过
		if net.CounterAddress == "" {
			continue
		}
		if err := s.syncOne(net); err != nil {
			log.Logger.Sugar().Error("sync counter value err ", net.ChainId, " ", err)
		}
	}
}

func (s *counterSync) syncOne(net chainNet) error {

	// 1. 连节点
	client, err := chain.DialWithTimeout(net.NetUrl, 20*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()

	// 2. 读链上计数值和当前区块高度
	caller, err := contract.NewCounterCaller(common.HexToAddress(net.CounterAddress), client)
	if err != nil {
		return err
	}
	value, err := caller.GetCount(&bind.CallOpts{})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	latest, err := client.BlockNumber(ctx)
	if err != nil {
		return err
	}
	// 顺手缓存块高，节点临时不可用时 networkInfo 还能给出个大致高度
	_ = db.RedisSetInt64("latest_block_"+net.ChainId, int64(latest), 600)

	// 3. 和库里的值比较，没变化就什么都不做
	state := models.CounterState{}
	_ = models.NewCounterState().GetByChainId(net.ChainId, &state)
	if state.Value == value.String() {
		return nil
	}

	// 4. 落库、清 API 缓存、发布更新
	err = models.NewCounterState().Save(net.ChainId, net.CounterAddress, value.String(), latest)
	if err != nil {
		return err
	}
	chainIdInt, _ := strconv.Atoi(net.ChainId)
	_, _ = db.RedisDelete(fmt.Sprintf("counter_value_%d", chainIdInt))
	_ = db.RedisPublish(db.ChanCounterUpdate, struct {
		ChainId int    `json:"chainId"`
		Value   string `json:"value"`
	}{chainIdInt, value.String()})

	log.Logger.Sugar().Info("counter value synced ", net.ChainId, " ", value.String())
	return nil
}
