package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// 生成的绑定之外的辅助定义，listener 和 schedule 共用

// EventCounterIncremented 事件名，UnpackLog 时用
const EventCounterIncremented = "CounterIncremented"

// CounterIncrementedTopic 事件的 topic0，过滤日志时用
// keccak256("CounterIncremented(address,uint256)")
func CounterIncrementedTopic() common.Hash {
	return crypto.Keccak256Hash([]byte("CounterIncremented(address,uint256)"))
}
