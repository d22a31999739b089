package chain

import (
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
)

// worker池处理日志，jobs 关闭并清空后返回的 WaitGroup 才结束
func StartWorkers(n int, jobs <-chan types.Log, handler func(types.Log)) *sync.WaitGroup {
	if n < 1 {
		n = 1
	}
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for l := range jobs {
				handler(l)
			}
		}()
	}
	return &wg
}
