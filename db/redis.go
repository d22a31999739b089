package db

import (
	"counter-backend/config"
	"counter-backend/log"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// RedisConn 全局变量，用于存储初始化后的连接池指针
var RedisConn *redis.Pool

// InitRedis 初始化Redis
func InitRedis() *redis.Pool {
	log.Logger.Info("Init Redis")
	redisConf := config.Config.Redis
	// 建立连接池
	RedisConn = &redis.Pool{
		MaxIdle:     redisConf.MaxIdle,   // 最大的空闲连接数，即使没有请求也保持待命
		MaxActive:   redisConf.MaxActive, // 最大的激活连接数，0 表示无穷大
		Wait:        true,                // 如果连接数不足则阻塞等待
		IdleTimeout: time.Duration(redisConf.IdleTimeout) * time.Second,
		// 定义建立物理连接的方法
		Dial: func() (redis.Conn, error) {
			c, err := redis.Dial("tcp", fmt.Sprintf("%s:%s", redisConf.Address, redisConf.Port))
			if err != nil {
				return nil, err
			}
			// 验证密码（本地开发一般不设密码，所以为空时跳过）
			if redisConf.Password != "" {
				if _, err = c.Do("auth", redisConf.Password); err != nil {
					_ = c.Close()
					return nil, err
				}
			}
			// 选择db （Redis默认有16个db，通常使用0）
			if _, err = c.Do("select", redisConf.Db); err != nil {
				_ = c.Close()
				return nil, err
			}
			return c, nil
		},
	}
	// 获取一个连接测试一下，确保配置没写错
	if err := RedisConn.Get().Err(); err != nil {
		panic("redis init err " + err.Error())
	}
	return RedisConn
}

/* ================== String（字符串）类型操作 ==================
   缓存计数器值、Token、登录状态都用 String。
   =========================================================== */

// RedisSet 设置 key、value、并支持设置过期秒数
// interface{} 可以接收任何类型，但在存入Redis前必须序列化（如 JSON）
func RedisSet(key string, data interface{}, aliveSeconds int) error {
	conn := RedisConn.Get() // 从池中取一个连接
	defer func() {
		_ = conn.Close() // 函数结束时必须归还连接到池中
	}()
	value, err := json.Marshal(data)
	if err != nil {
		return err
	}
	// EX 参数代表过期时间（单位：秒）
	if aliveSeconds > 0 {
		_, err = conn.Do("set", key, value, "EX", aliveSeconds)
	} else {
		_, err = conn.Do("set", key, value)
	}
	return err
}

// RedisSetString 设置key、value、time
func RedisSetString(key string, data string, aliveSeconds int) error {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	var err error
	if aliveSeconds > 0 {
		_, err = conn.Do("set", key, data, "EX", aliveSeconds)
	} else {
		_, err = conn.Do("set", key, data)
	}
	return err
}

// RedisGet 获取Key 对应的原始字节数据
func RedisGet(key string) ([]byte, error) {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	reply, err := redis.Bytes(conn.Do("get", key))
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// RedisGetString 获取Key对应的字符串
func RedisGetString(key string) (string, error) {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	reply, err := redis.String(conn.Do("get", key))
	if err != nil {
		return "", err
	}
	return reply, nil
}

// RedisSetInt64 专门存储 64位整数（计数器值、区块高度）
func RedisSetInt64(key string, data int64, aliveSeconds int) error {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	var err error
	if aliveSeconds > 0 {
		_, err = conn.Do("set", key, data, "EX", aliveSeconds)
	} else {
		_, err = conn.Do("set", key, data)
	}
	return err
}

// RedisGetInt64 获取整数值
func RedisGetInt64(key string) (int64, error) {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	reply, err := redis.Int64(conn.Do("get", key))
	if err != nil {
		return -1, err
	}
	return reply, nil
}

// RedisDelete 删除Key
func RedisDelete(key string) (bool, error) {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	return redis.Bool(conn.Do("del", key))
}

// RedisFlushDB 清空当前DB
func RedisFlushDB() error {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	_, err := conn.Do("flushdb")
	return err
}

// RedisExists 检查Key是否存在
func RedisExists(key string) bool {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	exists, err := redis.Bool(conn.Do("exists", key))
	if err != nil {
		return false
	}
	return exists
}

/* ================== Pub/Sub（发布订阅）操作 ==================
   schedule 和 listener 把计数器、价格更新发布到频道，
   API 的 WebSocket 中心订阅后推给浏览器，进程之间就解耦了。
   =========================================================== */

// RedisPublish 向频道发布一条 JSON 消息
func RedisPublish(channel string, data interface{}) error {
	conn := RedisConn.Get()
	defer func() {
		_ = conn.Close()
	}()
	value, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = conn.Do("publish", channel, value)
	return err
}

// RedisSubscribe 订阅频道，把每条消息交给 handler 处理
// 该函数会一直阻塞，需要用单独协程运行；连接出错后会自动重连
func RedisSubscribe(channel string, handler func([]byte)) {
	for {
		conn := RedisConn.Get()
		psc := redis.PubSubConn{Conn: conn}
		if err := psc.Subscribe(channel); err != nil {
			log.Logger.Error("redis subscribe err " + err.Error())
			_ = conn.Close()
			time.Sleep(3 * time.Second)
			continue
		}
	receive:
		for {
			switch v := psc.Receive().(type) {
			case redis.Message:
				handler(v.Data)
			case error:
				log.Logger.Error("redis subscribe receive err " + v.Error())
				break receive
			}
		}
		_ = psc.Unsubscribe(channel)
		_ = conn.Close()
		time.Sleep(3 * time.Second)
	}
}
