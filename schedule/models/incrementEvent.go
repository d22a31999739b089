package models

import (
	"counter-backend/db"
	"counter-backend/log"
	"counter-backend/utils"
	"errors"

	"gorm.io/gorm"
)

// CounterIncremented 事件索引表
// listener 实时写入；tx_hash + log_index 唯一，同一条日志扫到两次也只落一行
type IncrementEvent struct {
	Id          int    `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	ChainId     string `json:"chain_id" gorm:"column:chain_id;index:idx_chain_by"`
	TxHash      string `json:"tx_hash" gorm:"column:tx_hash;index:idx_tx_log,unique"`
	LogIndex    uint   `json:"log_index" gorm:"column:log_index;index:idx_tx_log,unique"`
	BlockNumber uint64 `json:"block_number" gorm:"column:block_number"`
	ByAddress   string `json:"by_address" gorm:"column:by_address;index:idx_chain_by"`
	NewValue    string `json:"new_value" gorm:"column:new_value"`
	CreatedAt   string `json:"created_at" gorm:"column:created_at"`
}

func NewIncrementEvent() *IncrementEvent {
	return &IncrementEvent{}
}

func (e *IncrementEvent) TableName() string {
	return "increment_events"
}

// Exists 幂等检查：这条日志是不是已经入过库
func (e *IncrementEvent) Exists(txHash string, logIndex uint) (bool, error) {
	var count int64
	err := db.Mysql.Table("increment_events").Where("tx_hash=? and log_index=?", txHash, logIndex).Count(&count).Error
	if err != nil {
		log.Logger.Error(err.Error())
		return false, err
	}
	return count > 0, nil
}

// Save 入库一条事件，重复日志直接跳过
func (e *IncrementEvent) Save(event *IncrementEvent) error {
	existing := IncrementEvent{}
	err := db.Mysql.Table("increment_events").Where("tx_hash=? and log_index=?", event.TxHash, event.LogIndex).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			event.CreatedAt = utils.GetCurDateTimeFormat()
			err = db.Mysql.Table("increment_events").Create(event).Error
			if err != nil {
				log.Logger.Error(err.Error())
				return err
			}
			return nil
		}
		return errors.New("record select err " + err.Error())
	}
	return nil
}
