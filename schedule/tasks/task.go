package tasks

import (
	"counter-backend/config"
	"counter-backend/db"
	"counter-backend/schedule/common"
	"counter-backend/schedule/services"
	"time"

	"github.com/jasonlvhit/gocron"
)

func Task() {

	// get environment variables
	common.GetEnv()

	// flush redis db
	err := db.RedisFlushDB()
	if err != nil {
		panic("clear redis error " + err.Error())
	}

	//init task
	services.NewCounterSync().SyncCounterValue()
	services.NewEthPrice().UpdateEthPrice()
	services.NewContractCheck().Check()
	services.NewBalanceMonitor().Monitor()

	//run counter task
	s := gocron.NewScheduler()
	s.ChangeLoc(time.UTC)
	_ = s.Every(uint64(config.Config.Env.TaskDuration)).Seconds().From(gocron.NextTick()).Do(services.NewCounterSync().SyncCounterValue)
	_ = s.Every(1).Minute().From(gocron.NextTick()).Do(services.NewEthPrice().UpdateEthPrice)
	_ = s.Every(30).Minutes().From(gocron.NextTick()).Do(services.NewBalanceMonitor().Monitor)
	_ = s.Every(2).Hours().From(gocron.NextTick()).Do(services.NewContractCheck().Check)
	<-s.Start() // Start all the pending jobs

}

// 任务,				频率,				理由
// SyncCounterValue,task_duration 秒,计数值是核心数据，落后了页面就是错的，周期可配。
// UpdateEthPrice,1 分钟,API 进程有实时流，这里只是兜底，一分钟足够。
// Monitor (余额),30 分钟,手续费消耗没那么快，半小时检查一次足够安全。
// Check (合约),2 小时,合约地址几乎不会变，低频核对防配置错误。

// 从下至上：MySQL/Redis -> Env -> Models -> Services -> Tasks。

// 从静态到动态：从配置读取到实时链上同步。
