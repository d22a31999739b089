package request

// 前端请求参数定义
// binding tag 由 gin + validator 在绑定时自动校验

type Login struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CounterValue 查询当前计数值
type CounterValue struct {
	ChainId int `json:"chainId" form:"chainId" binding:"required"`
}

// CounterIncrement 发起一次自增
// Address + Signature + SignedAt 可选：浏览器钱包签名后可以把这次点击归属到
// 访客地址，三个都不传时按匿名处理（交易仍由后端管理员账户发出）。
// SignedAt 是签名时的 Unix 秒，签进消息里，过期的签名抓包了也没法重放
type CounterIncrement struct {
	ChainId   int    `json:"chainId" binding:"required"`
	Address   string `json:"address" binding:"omitempty,eth_addr"`
	Signature string `json:"signature"`
	SignedAt  int64  `json:"signedAt"`
}

// CounterHistory 分页查询自增事件，Address 可选（只看某个地址的）
type CounterHistory struct {
	ChainId  int    `json:"chainId" form:"chainId" binding:"required"`
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"pageSize" form:"pageSize"`
	Address  string `json:"address" form:"address" binding:"omitempty,eth_addr"`
}

// TxStatus 查询交易状态
type TxStatus struct {
	ChainId int    `json:"chainId" form:"chainId" binding:"required"`
	TxHash  string `json:"txHash" form:"txHash" binding:"required,txhash"`
}

// RawTx 广播钱包已签名的裸交易
type RawTx struct {
	ChainId  int    `json:"chainId" binding:"required"`
	SignedTx string `json:"signedTx" binding:"required"`
}

// NetworkInfo 查询网络信息（前端初始化钱包网络用）
type NetworkInfo struct {
	ChainId int `json:"chainId" form:"chainId" binding:"required"`
}
