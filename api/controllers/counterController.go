package controllers

import (
	"counter-backend/api/common/statecode"
	"counter-backend/api/models/request"
	"counter-backend/api/models/response"
	"counter-backend/api/services"
	"counter-backend/api/validate"

	"github.com/gin-gonic/gin"
)

// CounterController 计数器相关的接口
type CounterController struct {
}

// Value 查询当前计数值
func (c *CounterController) Value(ctx *gin.Context) {
	res := response.Gin{Res: ctx}
	req := request.CounterValue{}
	result := response.CounterValue{}

	// 1. 参数校验
	errCode := validate.NewCounterValue().CounterValue(ctx, &req)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	// 2. 业务处理：按 Redis -> MySQL -> 链上 的顺序取值
	errCode = services.NewCounter().Value(&req, &result)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	// 3. 返回结果
	res.Response(ctx, statecode.CommonSuccess, result)
	return
}

// Increment 发起一次自增
func (c *CounterController) Increment(ctx *gin.Context) {
	res := response.Gin{Res: ctx}
	req := request.CounterIncrement{}
	result := response.CounterIncrement{}

	// 1. 参数校验（地址、签名要么都传要么都不传）
	errCode := validate.NewCounterIncrement().CounterIncrement(ctx, &req)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	// 2. 业务处理：验签、发交易、等上链、刷缓存、广播
	errCode = services.NewCounter().Increment(&req, &result)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	// 3. 返回交易哈希、最新值和浏览器链接
	res.Response(ctx, statecode.CommonSuccess, result)
	return
}

// Resync 管理员强制从链上同步一次计数值（要先登录）
func (c *CounterController) Resync(ctx *gin.Context) {
	res := response.Gin{Res: ctx}
	req := request.CounterValue{}
	result := response.CounterValue{}

	// 1. 参数和查询值用同一套校验
	errCode := validate.NewCounterValue().CounterValue(ctx, &req)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	// 2. 业务处理：直接查链、落库、刷缓存、广播
	errCode = services.NewCounter().Resync(&req, &result)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	// 3. 返回链上最新值
	res.Response(ctx, statecode.CommonSuccess, result)
	return
}

// History 分页查询自增事件
func (c *CounterController) History(ctx *gin.Context) {
	res := response.Gin{Res: ctx}
	req := request.CounterHistory{}
	result := response.CounterHistory{}

	errCode := validate.NewCounterHistory().CounterHistory(ctx, &req)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	errCode = services.NewCounter().History(&req, &result)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	res.Response(ctx, statecode.CommonSuccess, result)
	return
}

// TxStatus 查询交易状态
func (c *CounterController) TxStatus(ctx *gin.Context) {
	res := response.Gin{Res: ctx}
	req := request.TxStatus{}
	result := response.TxStatus{}

	errCode := validate.NewTxStatus().TxStatus(ctx, &req)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	errCode = services.NewCounter().TxStatus(&req, &result)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	res.Response(ctx, statecode.CommonSuccess, result)
	return
}

// BroadcastRaw 广播钱包签好的裸交易
func (c *CounterController) BroadcastRaw(ctx *gin.Context) {
	res := response.Gin{Res: ctx}
	req := request.RawTx{}
	result := response.RawTx{}

	errCode := validate.NewRawTx().RawTx(ctx, &req)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	errCode = services.NewCounter().BroadcastRaw(&req, &result)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	res.Response(ctx, statecode.CommonSuccess, result)
	return
}

// NetworkInfo 查询网络信息
func (c *CounterController) NetworkInfo(ctx *gin.Context) {
	res := response.Gin{Res: ctx}
	req := request.NetworkInfo{}
	result := response.NetworkInfo{}

	errCode := validate.NewNetworkInfo().NetworkInfo(ctx, &req)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	errCode = services.NewCounter().NetworkInfo(&req, &result)
	if errCode != statecode.CommonSuccess {
		res.Response(ctx, errCode, nil)
		return
	}
	res.Response(ctx, statecode.CommonSuccess, result)
	return
}
