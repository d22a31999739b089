package models

import "counter-backend/db"

// InitTable 按 struct 定义自动建表/更新表结构
func InitTable() {
	db.Mysql.AutoMigrate(&CounterState{})
	db.Mysql.AutoMigrate(&IncrementEvent{})
}
