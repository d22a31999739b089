package models

import (
	"counter-backend/db"
	"counter-backend/log"
)

// 自增事件表：每条 CounterIncremented 日志一行
// tx_hash + log_index 唯一，保证重复扫到同一条日志时幂等
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

// History 分页查询，address 传空串表示不过滤
// 按区块号和日志号倒序，最新的自增排最前
func (e *IncrementEvent) History(chainId, address string, page, pageSize int, total *int64, res *[]IncrementEvent) error {
	tx := db.Mysql.Table("increment_events").Where("chain_id=?", chainId)
	if address != "" {
		tx = tx.Where("by_address=?", address)
	}
	err := tx.Count(total).Error
	if err != nil {
		log.Logger.Error(err.Error())
		return err
	}
	err = tx.Order("block_number desc, log_index desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&res).Error
	if err != nil {
		log.Logger.Error(err.Error())
		return err
	}
	return nil
}
