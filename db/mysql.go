package db

import (
	"counter-backend/config"
	"counter-backend/log"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Mysql 全局变量，存储初始化后的 gorm 连接
var Mysql *gorm.DB

// InitMysql 初始化Mysql
func InitMysql() *gorm.DB {
	log.Logger.Info("Init Mysql")
	mysqlConf := config.Config.Mysql
	// dsn 连接串：utf8mb4 支持完整字符集，parseTime 让 gorm 能扫描 time.Time
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		mysqlConf.UserName,
		mysqlConf.Password,
		mysqlConf.Address,
		mysqlConf.Port,
		mysqlConf.DbName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn), // 只打印慢查询和错误
	})
	if err != nil {
		panic("mysql connect err " + err.Error())
	}

	// 连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		panic("mysql pool err " + err.Error())
	}
	sqlDB.SetMaxOpenConns(mysqlConf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(mysqlConf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(mysqlConf.MaxLifeTime) * time.Minute)

	Mysql = db
	return Mysql
}
