package services

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"counter-backend/api/common/statecode"
	"counter-backend/api/models"
	"counter-backend/api/models/request"
	"counter-backend/api/models/response"
	"counter-backend/chain"
	"counter-backend/config"
	"counter-backend/contract"
	"counter-backend/db"
	"counter-backend/log"
	"counter-backend/utils"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

type counterService struct{}

func NewCounter() *counterService {
	return &counterService{}
}

// 访客带签名自增时要签的内容，前端页面拼的字符串必须和这里一致
// 末尾是签名时的 Unix 秒，消息本身就带时效，旧签名没法反复用
const incrementSignFormat = "counter:increment:%d:%d"

// 签名有效期：太旧的拒绝；客户端时钟快一点正常，太超前的也拒绝
const (
	incrementSignMaxAge  = 10 * time.Minute
	incrementSignMaxSkew = 2 * time.Minute
)

func incrementSignMessage(chainId int, signedAt int64) string {
	return fmt.Sprintf(incrementSignFormat, chainId, signedAt)
}

func incrementSignFresh(signedAt int64, now time.Time) bool {
	age := now.Unix() - signedAt
	return age <= int64(incrementSignMaxAge/time.Second) &&
		age >= -int64(incrementSignMaxSkew/time.Second)
}

// netConf 把测试网/主网配置拢成一个类型，service 内部统一用它
type netConf struct {
	ChainId        string
	ChainName      string
	NetUrl         string
	WsUrl          string
	CounterAddress string
	ExplorerUrl    string
	ExplorerApi    string
	BridgeUrl      string
}

// chainConf 按链ID选配置，validate 层已经拦过非法值
func chainConf(chainId int) netConf {
	if chainId == 2818 {
		m := config.Config.MainNet
		return netConf{
			ChainId:        m.ChainId,
			ChainName:      "Morph Mainnet",
			NetUrl:         m.NetUrl,
			WsUrl:          m.WsUrl,
			CounterAddress: m.CounterAddress,
			ExplorerUrl:    m.ExplorerUrl,
			ExplorerApi:    m.ExplorerApi,
			BridgeUrl:      m.BridgeUrl,
		}
	}
	t := config.Config.TestNet
	return netConf{
		ChainId:        t.ChainId,
		ChainName:      "Morph Holesky Testnet",
		NetUrl:         t.NetUrl,
		WsUrl:          t.WsUrl,
		CounterAddress: t.CounterAddress,
		ExplorerUrl:    t.ExplorerUrl,
		ExplorerApi:    t.ExplorerApi,
		BridgeUrl:      t.BridgeUrl,
	}
}

// counterPush 发布到 Redis 频道的消息体，ws 原样推给浏览器
type counterPush struct {
	ChainId int    `json:"chainId"`
	Value   string `json:"value"`
	TxHash  string `json:"txHash,omitempty"`
}

// Value 查询当前计数值
// 数据来源按 Redis -> MySQL -> 链上 的顺序取，越靠前越快
func (s *counterService) Value(req *request.CounterValue, result *response.CounterValue) int {
	conf := chainConf(req.ChainId)
	if conf.CounterAddress == "" {
		return statecode.CounterNotDeployed
	}

	// 1. Redis 缓存（listener 每次收到事件都会刷新）
	cacheKey := fmt.Sprintf("counter_value_%d", req.ChainId)
	cached, err := db.RedisGet(cacheKey)
	if err == nil && len(cached) > 0 {
		if jsonErr := json.Unmarshal(cached, result); jsonErr == nil {
			result.Source = "cache"
			return statecode.CommonSuccess
		}
	}

	// 2. MySQL（schedule / listener 同步写入）
	state := models.CounterState{}
	err = models.NewCounterState().GetByChainId(conf.ChainId, &state)
	if err == nil && state.Value != "" {
		result.ChainId = req.ChainId
		result.CounterAddress = state.CounterAddress
		result.Value = state.Value
		result.UpdatedAt = state.UpdatedAt
		result.Source = "db"
		_ = db.RedisSet(cacheKey, result, 10)
		return statecode.CommonSuccess
	}

	// 3. 都没有就直接查链（首次启动、缓存被清都会走到这）
	client, err := chain.DialWithTimeout(conf.NetUrl, 10*time.Second)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	defer client.Close()
	caller, err := contract.NewCounterCaller(common.HexToAddress(conf.CounterAddress), client)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	v, err := caller.GetCount(&bind.CallOpts{})
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}

	result.ChainId = req.ChainId
	result.CounterAddress = conf.CounterAddress
	result.Value = v.String()
	result.UpdatedAt = utils.GetCurDateTimeFormat()
	result.Source = "chain"
	_ = db.RedisSet(cacheKey, result, 10)
	return statecode.CommonSuccess
}

// Increment 用管理员账户发一笔 increment 交易并等它上链
// 访客带了地址和签名时先验签，把这次点击归属到访客地址（记在日志里）
func (s *counterService) Increment(req *request.CounterIncrement, result *response.CounterIncrement) int {
	conf := chainConf(req.ChainId)
	if conf.CounterAddress == "" {
		return statecode.CounterNotDeployed
	}

	// 1. 访客签名校验（可选），先看时效再验签
	if req.Address != "" {
		if !incrementSignFresh(req.SignedAt, time.Now()) {
			return statecode.SignatureErr
		}
		message := incrementSignMessage(req.ChainId, req.SignedAt)
		ok, err := utils.VerifyPersonalSign(req.Address, message, req.Signature)
		if err != nil || !ok {
			if err != nil {
				log.Logger.Sugar().Error("verify sign err ", err)
			}
			return statecode.SignatureErr
		}
		log.Logger.Sugar().Info("increment by visitor ", req.Address)
	}

	// 2. 管理员私钥（交易的 gas 由管理员账户出）
	hexkey, ok := os.LookupEnv("counter_admin_private_key")
	if !ok {
		log.Logger.Error("environment variable counter_admin_private_key is not set")
		return statecode.CommonErrServerErr
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexkey, "0x"))
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.CommonErrServerErr
	}
	chainId, err := strconv.ParseInt(conf.ChainId, 10, 64)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.CommonErrServerErr
	}
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainId))
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.CommonErrServerErr
	}

	// 3. 发交易
	client, err := chain.DialWithTimeout(conf.NetUrl, 10*time.Second)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	defer client.Close()
	counter, err := contract.NewCounter(common.HexToAddress(conf.CounterAddress), client)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	tx, err := counter.Increment(auth)
	if err != nil {
		log.Logger.Sugar().Error("increment tx err ", err)
		return statecode.ChainRequestErr
	}

	// 4. 等交易上链（L2 出块快，两分钟兜底足够）
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		log.Logger.Sugar().Error("wait mined err ", err)
		return statecode.ChainRequestErr
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		log.Logger.Sugar().Error("increment tx reverted ", tx.Hash().Hex())
		return statecode.ChainRequestErr
	}

	// 5. 回读最新值，同步缓存并广播
	v, err := counter.GetCount(&bind.CallOpts{})
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	_ = models.NewCounterState().Save(conf.ChainId, conf.CounterAddress, v.String(), receipt.BlockNumber.Uint64())
	_, _ = db.RedisDelete(fmt.Sprintf("counter_value_%d", req.ChainId))
	_ = db.RedisPublish(db.ChanCounterUpdate, counterPush{
		ChainId: req.ChainId,
		Value:   v.String(),
		TxHash:  tx.Hash().Hex(),
	})

	result.TxHash = tx.Hash().Hex()
	result.Value = v.String()
	result.ExplorerUrl = conf.ExplorerUrl + "/tx/" + tx.Hash().Hex()
	return statecode.CommonSuccess
}

// Resync 管理员手动触发一次链上同步
// 怀疑缓存或库里的值不对时用，不用等 schedule 的下个周期
func (s *counterService) Resync(req *request.CounterValue, result *response.CounterValue) int {
	conf := chainConf(req.ChainId)
	if conf.CounterAddress == "" {
		return statecode.CounterNotDeployed
	}

	client, err := chain.DialWithTimeout(conf.NetUrl, 10*time.Second)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	defer client.Close()
	caller, err := contract.NewCounterCaller(common.HexToAddress(conf.CounterAddress), client)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	v, err := caller.GetCount(&bind.CallOpts{})
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	latest, err := client.BlockNumber(ctx)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}

	_ = models.NewCounterState().Save(conf.ChainId, conf.CounterAddress, v.String(), latest)
	_, _ = db.RedisDelete(fmt.Sprintf("counter_value_%d", req.ChainId))
	_ = db.RedisPublish(db.ChanCounterUpdate, counterPush{ChainId: req.ChainId, Value: v.String()})

	result.ChainId = req.ChainId
	result.CounterAddress = conf.CounterAddress
	result.Value = v.String()
	result.UpdatedAt = utils.GetCurDateTimeFormat()
	result.Source = "chain"
	return statecode.CommonSuccess
}

// History 分页查自增事件（listener 落库的数据）
func (s *counterService) History(req *request.CounterHistory, result *response.CounterHistory) int {
	conf := chainConf(req.ChainId)

	page := req.Page
	if page == 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = 10
	}

	// 地址统一转成 checksum 格式再查，listener 落库时存的就是这种
	address := req.Address
	if address != "" {
		address = common.HexToAddress(address).Hex()
	}

	var total int64
	var events []models.IncrementEvent
	err := models.NewIncrementEvent().History(conf.ChainId, address, page, pageSize, &total, &events)
	if err != nil {
		return statecode.CommonErrServerErr
	}

	rows := make([]response.CounterHistoryItem, 0, len(events))
	for _, e := range events {
		rows = append(rows, response.CounterHistoryItem{
			TxHash:      e.TxHash,
			BlockNumber: e.BlockNumber,
			By:          e.ByAddress,
			Value:       e.NewValue,
			CreatedAt:   e.CreatedAt,
		})
	}
	result.Count = total
	result.Rows = rows
	return statecode.CommonSuccess
}

// TxStatus 查交易状态：pending / success / failed
func (s *counterService) TxStatus(req *request.TxStatus, result *response.TxStatus) int {
	conf := chainConf(req.ChainId)
	client, err := chain.DialWithTimeout(conf.NetUrl, 10*time.Second)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	hash := common.HexToHash(req.TxHash)

	_, isPending, err := client.TransactionByHash(ctx, hash)
	if err == ethereum.NotFound {
		return statecode.TxNotFound
	} else if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	result.TxHash = req.TxHash
	if isPending {
		result.Status = "pending"
		return statecode.CommonSuccess
	}

	receipt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		result.Status = "success"
	} else {
		result.Status = "failed"
	}
	result.BlockNumber = receipt.BlockNumber.Uint64()
	result.GasUsed = receipt.GasUsed
	return statecode.CommonSuccess
}

// BroadcastRaw 广播钱包签好的裸交易
// 前端用 MetaMask 自己签 increment 时走这条路，后端只做转发
func (s *counterService) BroadcastRaw(req *request.RawTx, result *response.RawTx) int {
	conf := chainConf(req.ChainId)

	raw, err := hex.DecodeString(strings.TrimPrefix(req.SignedTx, "0x"))
	if err != nil {
		return statecode.RawTxFormatErr
	}
	tx := new(types.Transaction)
	if err = tx.UnmarshalBinary(raw); err != nil {
		log.Logger.Sugar().Error("decode raw tx err ", err)
		return statecode.RawTxFormatErr
	}

	client, err := chain.DialWithTimeout(conf.NetUrl, 10*time.Second)
	if err != nil {
		log.Logger.Error(err.Error())
		return statecode.ChainRequestErr
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = client.SendTransaction(ctx, tx); err != nil {
		log.Logger.Sugar().Error("send raw tx err ", err)
		return statecode.ChainRequestErr
	}
	result.TxHash = tx.Hash().Hex()
	return statecode.CommonSuccess
}

// NetworkInfo 网络信息，前端"连接钱包/添加网络"用
func (s *counterService) NetworkInfo(req *request.NetworkInfo, result *response.NetworkInfo) int {
	conf := chainConf(req.ChainId)

	result.ChainId = req.ChainId
	result.ChainName = conf.ChainName
	result.NetUrl = conf.NetUrl
	result.WsUrl = conf.WsUrl
	result.ExplorerUrl = conf.ExplorerUrl
	result.BridgeUrl = conf.BridgeUrl
	result.CounterAddress = conf.CounterAddress

	// 区块高度和 gas 价拿不到也不算失败，置零返回
	client, err := chain.DialWithTimeout(conf.NetUrl, 10*time.Second)
	if err != nil {
		log.Logger.Error(err.Error())
		// 节点暂时连不上就用 schedule 缓存的块高兜底
		if cached, cacheErr := db.RedisGetInt64("latest_block_" + conf.ChainId); cacheErr == nil && cached > 0 {
			result.LatestBlock = uint64(cached)
		}
		return statecode.CommonSuccess
	}
	defer client.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if latest, blockErr := client.BlockNumber(ctx); blockErr == nil {
		result.LatestBlock = latest
	}
	if gasPrice, gasErr := client.SuggestGasPrice(ctx); gasErr == nil {
		result.GasPriceWei = gasPrice.String()
	}
	return statecode.CommonSuccess
}
