package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// BlockRange 闭区间 [From, To]
type BlockRange struct {
	From uint64
	To   uint64
}

// SplitRange 把 [from, to] 切成若干个最多 size 块的小区间
// 节点对太宽的 eth_getLogs 会直接拒绝，历史补扫必须分批
func SplitRange(from, to, size uint64) []BlockRange {
	if to < from || size == 0 {
		return nil
	}
	var out []BlockRange
	for start := from; start <= to; start += size {
		end := start + size - 1
		if end > to {
			end = to
		}
		out = append(out, BlockRange{From: start, To: end})
	}
	return out
}

// 扫历史区块（生产必须），结果按区块顺序推到 out
func ScanHistory(ctx context.Context, client *ethclient.Client, addr common.Address, from, to uint64, out chan<- types.Log) error {
	q := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{addr},
	}
	logs, err := client.FilterLogs(ctx, q)
	if err != nil {
		return errors.Wrapf(err, "filter logs %d-%d", from, to)
	}
	for _, l := range logs {
		select {
		case out <- l:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
