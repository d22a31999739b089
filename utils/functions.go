package utils

import (
	"math/big"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

const randomStringSource = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GetRandomString 生成长度为 n 的随机字符串（用于 WebSocket 连接 ID）
func GetRandomString(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = randomStringSource[r.Intn(len(randomStringSource))]
	}
	return string(b)
}

// GetCurDateTimeFormat 当前时间，数据表通用的格式
func GetCurDateTimeFormat() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// WeiToEthStr wei 转 ETH 字符串
// 链上金额都是 wei（10^-18 ETH）的大整数，float64 精度不够，
// 所以用 decimal 做十进制移位，例如 51239000000000000 -> "0.051239"
func WeiToEthStr(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -18).String()
}

// EthStrToWei ETH 字符串转 wei，小于 1 wei 的部分直接截断
func EthStrToWei(eth string) (*big.Int, error) {
	d, err := decimal.NewFromString(eth)
	if err != nil {
		return nil, err
	}
	return d.Shift(18).Truncate(0).BigInt(), nil
}
