package models

import (
	"counter-backend/db"
	"counter-backend/log"
	"counter-backend/utils"
	"errors"

	"gorm.io/gorm"
)

// 计数器当前状态 将链上的智能合约状态同步到本地数据库中

// CounterState: 每条链一行，记录计数器的最新值。
// Value: 十进制字符串。getCount 返回 uint256，超出 bigint 范围，不能用整数列。
// BlockNumber: 该值对应的区块高度，更新时做单调检查，旧区块的数据不能覆盖新的。
type CounterState struct {
	Id             int    `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	ChainId        string `json:"chain_id" gorm:"column:chain_id"`
	CounterAddress string `json:"counter_address" gorm:"column:counter_address"`
	Value          string `json:"value" gorm:"column:value"`
	BlockNumber    uint64 `json:"block_number" gorm:"column:block_number"`
	CreatedAt      string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      string `json:"updated_at" gorm:"column:updated_at"`
}

func NewCounterState() *CounterState {
	return &CounterState{}
}

func (c *CounterState) TableName() string {
	return "counter_state"
}

func (c *CounterState) GetByChainId(chainId string, res *CounterState) error {
	err := db.Mysql.Table("counter_state").Where("chain_id=?", chainId).First(&res).Error
	if err != nil {
		return err
	}
	return nil
}

// Save 不存在就插入，存在就更新
func (c *CounterState) Save(chainId, counterAddress, value string, blockNumber uint64) error {
	nowDateTime := utils.GetCurDateTimeFormat()

	state := CounterState{}
	err := db.Mysql.Table("counter_state").Where("chain_id=?", chainId).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			state = CounterState{
				ChainId:        chainId,
				CounterAddress: counterAddress,
				Value:          value,
				BlockNumber:    blockNumber,
				CreatedAt:      nowDateTime,
				UpdatedAt:      nowDateTime,
			}
			err = db.Mysql.Table("counter_state").Create(&state).Error
			if err != nil {
				log.Logger.Error(err.Error())
				return err
			}
			return nil
		}
		return errors.New("record select err " + err.Error())
	}

	// 轮询和事件两条路都会写这张表，旧区块的值不能覆盖新的
	if blockNumber < state.BlockNumber {
		return nil
	}
	err = db.Mysql.Table("counter_state").Where("chain_id=?", chainId).Updates(map[string]interface{}{
		"counter_address": counterAddress,
		"value":           value,
		"block_number":    blockNumber,
		"updated_at":      nowDateTime,
	}).Error
	if err != nil {
		log.Logger.Error(err.Error())
		return err
	}
	return nil
}
