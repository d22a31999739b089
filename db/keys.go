package db

// Redis 发布订阅频道名，三个进程（api / schedule / listener）共用
// 缓存 key 不放这里，按 fmt.Sprintf("counter_value_%s", chainId) 的约定拼
const (
	// ChanCounterUpdate 计数器有新值时发布（schedule 和 listener 写，api 的 ws 订阅）
	ChanCounterUpdate = "counter_update"

	// ChanEthPrice ETH 最新价（kucoin 抓取协程写，api 的 ws 订阅）
	ChanEthPrice = "eth_price_update"
)
