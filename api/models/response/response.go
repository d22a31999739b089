package response

import (
	"counter-backend/api/common/statecode"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Gin 响应工具，包一层方便在 controller 里少写重复代码
type Gin struct {
	Res *gin.Context
}

// Response 统一响应结构：code + message + data
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"message"`
	Data interface{} `json:"data"`
}

// Response HTTP状态码永远是200，业务成败看 code 字段
func (g *Gin) Response(c *gin.Context, errCode int, data interface{}) {
	g.Res.JSON(http.StatusOK, Response{
		Code: errCode,
		Msg:  statecode.GetMsg(errCode),
		Data: data,
	})
	return
}

type Login struct {
	Token string `json:"token"`
}

// CounterValue 当前计数值
// Value 用字符串：链上是 uint256，int64 可能放不下
type CounterValue struct {
	ChainId        int    `json:"chainId"`
	CounterAddress string `json:"counterAddress"`
	Value          string `json:"value"`
	UpdatedAt      string `json:"updatedAt"`
	Source         string `json:"source"` // cache / db / chain，方便排查数据从哪来
}

// CounterIncrement 自增结果，附上浏览器链接方便用户直接查看交易
type CounterIncrement struct {
	TxHash      string `json:"txHash"`
	Value       string `json:"value"`
	ExplorerUrl string `json:"explorerUrl"`
}

type CounterHistoryItem struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	By          string `json:"by"`
	Value       string `json:"value"`
	CreatedAt   string `json:"createdAt"`
}

// CounterHistory 分页结果：总数 + 当前页
type CounterHistory struct {
	Count int64                `json:"count"`
	Rows  []CounterHistoryItem `json:"rows"`
}

// TxStatus pending / success / failed
type TxStatus struct {
	TxHash      string `json:"txHash"`
	Status      string `json:"status"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
}

type RawTx struct {
	TxHash string `json:"txHash"`
}

// NetworkInfo 前端"添加网络"按钮需要的全部信息
type NetworkInfo struct {
	ChainId        int    `json:"chainId"`
	ChainName      string `json:"chainName"`
	NetUrl         string `json:"netUrl"`
	WsUrl          string `json:"wsUrl"`
	ExplorerUrl    string `json:"explorerUrl"`
	BridgeUrl      string `json:"bridgeUrl"`
	CounterAddress string `json:"counterAddress"`
	LatestBlock    uint64 `json:"latestBlock"`
	GasPriceWei    string `json:"gasPriceWei"`
}

// EthPrice ETH 现价（Kucoin 抓取后缓存在 Redis）
type EthPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}
