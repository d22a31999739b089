package contract

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 模拟链的 chain id
var simChainID = big.NewInt(1337)

func newTestBackend(t *testing.T) (*simulated.Backend, *bind.TransactOpts, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	auth, err := bind.NewKeyedTransactorWithChainID(key, simChainID)
	require.NoError(t, err)

	balance := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
	sim := simulated.NewBackend(types.GenesisAlloc{
		auth.From: {Balance: balance},
	})
	t.Cleanup(func() { _ = sim.Close() })
	return sim, auth, key
}

func deployTestCounter(t *testing.T, sim *simulated.Backend, auth *bind.TransactOpts) (common.Address, *Counter) {
	t.Helper()
	addr, tx, counter, err := DeployCounter(auth, sim.Client())
	require.NoError(t, err)
	sim.Commit()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	deployed, err := bind.WaitDeployed(ctx, sim.Client(), tx)
	require.NoError(t, err)
	require.Equal(t, addr, deployed)
	return addr, counter
}

func TestDeployCounterStartsAtZero(t *testing.T) {
	sim, auth, _ := newTestBackend(t)
	_, counter := deployTestCounter(t, sim, auth)

	v, err := counter.GetCount(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Zero(t, v.Sign())
}

func TestIncrementOnceReadsOne(t *testing.T) {
	sim, auth, _ := newTestBackend(t)
	_, counter := deployTestCounter(t, sim, auth)

	tx, err := counter.Increment(auth)
	require.NoError(t, err)
	sim.Commit()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	receipt, err := bind.WaitMined(ctx, sim.Client(), tx)
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	v, err := counter.GetCount(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())

	// increment 只留下一条事件：发送者 + 自增后的值
	require.Len(t, receipt.Logs, 1)
	ev, err := counter.ParseCounterIncremented(*receipt.Logs[0])
	require.NoError(t, err)
	assert.Equal(t, auth.From, ev.By)
	assert.Equal(t, int64(1), ev.NewValue.Int64())
}

func TestNIncrementsReadN(t *testing.T) {
	sim, auth, _ := newTestBackend(t)
	_, counter := deployTestCounter(t, sim, auth)

	const n = 7
	for i := 0; i < n; i++ {
		_, err := counter.Increment(auth)
		require.NoError(t, err)
		sim.Commit()
	}

	v, err := counter.GetCount(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, int64(n), v.Int64())

	// 历史过滤按顺序看到每一次自增，值严格递增
	it, err := counter.FilterCounterIncremented(&bind.FilterOpts{Start: 0}, nil)
	require.NoError(t, err)
	defer it.Close()

	var got []int64
	for it.Next() {
		assert.Equal(t, auth.From, it.Event.By)
		got = append(got, it.Event.NewValue.Int64())
	}
	require.NoError(t, it.Error())
	require.Len(t, got, n)
	for i, v := range got {
		assert.Equal(t, int64(i+1), v)
	}

	// 按无关地址过滤应该一条都没有
	stranger := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	it2, err := counter.FilterCounterIncremented(&bind.FilterOpts{Start: 0}, []common.Address{stranger})
	require.NoError(t, err)
	defer it2.Close()
	assert.False(t, it2.Next())
	require.NoError(t, it2.Error())
}

func TestWatchCounterIncremented(t *testing.T) {
	sim, auth, _ := newTestBackend(t)
	_, counter := deployTestCounter(t, sim, auth)

	sink := make(chan *CounterCounterIncremented, 4)
	sub, err := counter.WatchCounterIncremented(&bind.WatchOpts{}, sink, nil)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	_, err = counter.Increment(auth)
	require.NoError(t, err)
	sim.Commit()

	select {
	case ev := <-sink:
		assert.Equal(t, auth.From, ev.By)
		assert.Equal(t, int64(1), ev.NewValue.Int64())
	case err := <-sub.Err():
		t.Fatalf("subscription failed: %v", err)
	case <-time.After(10 * time.Second):
		t.Fatal("no event within deadline")
	}
}

func TestPlainTransferReverts(t *testing.T) {
	sim, auth, key := newTestBackend(t)
	addr, _ := deployTestCounter(t, sim, auth)
	client := sim.Client()
	ctx := context.Background()

	// 合约不收转账，裸转账必须revert
	nonce, err := client.PendingNonceAt(ctx, auth.From)
	require.NoError(t, err)
	head, err := client.HeaderByNumber(ctx, nil)
	require.NoError(t, err)
	tip, err := client.SuggestGasTipCap(ctx)
	require.NoError(t, err)
	feeCap := new(big.Int).Add(new(big.Int).Mul(head.BaseFee, big.NewInt(2)), tip)

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   simChainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       60000,
		To:        &addr,
		Value:     big.NewInt(1),
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(simChainID), key)
	require.NoError(t, err)
	require.NoError(t, client.SendTransaction(ctx, signed))
	sim.Commit()

	receipt, err := client.TransactionReceipt(ctx, signed.Hash())
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusFailed, receipt.Status)
}

func TestBindingArtifactPins(t *testing.T) {
	parsed, err := CounterMetaData.GetAbi()
	require.NoError(t, err)

	// indexer 和浏览器链接依赖的选择器和topic
	assert.Equal(t, common.FromHex("0xd09de08a"), parsed.Methods["increment"].ID)
	assert.Equal(t, common.FromHex("0xa87d942c"), parsed.Methods["getCount"].ID)
	assert.Equal(t,
		common.HexToHash("0x59950fb23669ee30425f6d79758e75fae698a6c88b2982f2980638d8bcd9397d"),
		parsed.Events[EventCounterIncremented].ID)
}
