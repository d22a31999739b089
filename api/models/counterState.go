package models

import (
	"counter-backend/db"
	"counter-backend/log"
	"counter-backend/utils"
	"errors"

	"gorm.io/gorm"
)

// 计数器当前状态表：每条链一行
// Value 用 varchar 存十进制字符串，uint256 超出 bigint 范围
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

// GetByChainId 查某条链的计数器状态
func (c *CounterState) GetByChainId(chainId string, res *CounterState) error {
	err := db.Mysql.Table("counter_state").Where("chain_id=?", chainId).First(&res).Error
	if err != nil {
		return err
	}
	return nil
}

// Save 不存在就插入，存在就更新（value 和区块高度）
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

	// 老的事件晚到时不能把新值覆盖回去
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
