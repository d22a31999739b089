package models

import "counter-backend/db"

// 定时任务和监听进程共用的表 保存db 持久化数据
func InitTable() {
	db.Mysql.AutoMigrate(&CounterState{})
	db.Mysql.AutoMigrate(&IncrementEvent{})
	db.Mysql.AutoMigrate(&ChainState{})
}
