package models

import (
	"counter-backend/db"
	"counter-backend/log"
	"counter-backend/utils"
	"errors"

	"gorm.io/gorm"
)

// 事件扫描进度表：每条链一行，记录扫到哪个区块了
// listener 重启后从 last_block+1 继续补扫，不用每次都从部署区块扫起
type ChainState struct {
	Id        int    `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	ChainId   string `json:"chain_id" gorm:"column:chain_id;index:idx_chain,unique"`
	LastBlock uint64 `json:"last_block" gorm:"column:last_block"`
	UpdatedAt string `json:"updated_at" gorm:"column:updated_at"`
}

func NewChainState() *ChainState {
	return &ChainState{}
}

func (c *ChainState) TableName() string {
	return "chain_state"
}

// GetLastBlock 没有记录时返回 0，调用方回退到配置里的起始区块
func (c *ChainState) GetLastBlock(chainId string) (uint64, error) {
	state := ChainState{}
	err := db.Mysql.Table("chain_state").Where("chain_id=?", chainId).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		log.Logger.Error(err.Error())
		return 0, err
	}
	return state.LastBlock, nil
}

// SaveLastBlock 只往前推进，乱序到达的旧区块号忽略
func (c *ChainState) SaveLastBlock(chainId string, blockNumber uint64) error {
	nowDateTime := utils.GetCurDateTimeFormat()

	state := ChainState{}
	err := db.Mysql.Table("chain_state").Where("chain_id=?", chainId).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			state = ChainState{
				ChainId:   chainId,
				LastBlock: blockNumber,
				UpdatedAt: nowDateTime,
			}
			err = db.Mysql.Table("chain_state").Create(&state).Error
			if err != nil {
				log.Logger.Error(err.Error())
				return err
			}
			return nil
		}
		return errors.New("record select err " + err.Error())
	}

	if blockNumber <= state.LastBlock {
		return nil
	}
	err = db.Mysql.Table("chain_state").Where("chain_id=?", chainId).Updates(map[string]interface{}{
		"last_block": blockNumber,
		"updated_at": nowDateTime,
	}).Error
	if err != nil {
		log.Logger.Error(err.Error())
		return err
	}
	return nil
}
