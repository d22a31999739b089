package ws

import (
	"counter-backend/config"
	"counter-backend/db"
	"counter-backend/log"
	"counter-backend/utils"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket 推送中心
// 浏览器连上来后注册到 Manager；Redis 频道里有计数器或价格更新就广播给所有连接，
// 前端页面不用轮询就能看到计数值变化

const (
	SuccessCode = 0
	PongCode    = 1
	ErrorCode   = -1
)

type Server struct {
	sync.Mutex
	Id       string
	Socket   *websocket.Conn
	Send     chan []byte
	LastTime int64 // 最后一次收到心跳的时间
}

type ServerManager struct {
	Servers utils.Map
}

// Message 下发给浏览器的统一格式
type Message struct {
	Code int    `json:"code"`
	Data string `json:"data"`
}

// Push 广播消息的信封，type 区分是计数器更新还是价格更新
type Push struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

var Manager = ServerManager{}

// SendToClient 加锁写，gorilla 的连接不允许并发写入
func (s *Server) SendToClient(data string, code int) {
	s.Lock()
	defer s.Unlock()
	dataBytes, err := json.Marshal(Message{Code: code, Data: data})
	if err != nil {
		log.Logger.Sugar().Error(s.Id, " marshal message err ", err)
		return
	}
	if err = s.Socket.WriteMessage(websocket.TextMessage, dataBytes); err != nil {
		log.Logger.Sugar().Error(s.Id, " write message err ", err)
	}
}

// ReadAndWrite 一条连接的完整生命周期：注册、读写协程、心跳检查、注销
func (s *Server) ReadAndWrite() {
	// 缓冲必须容得下读写两个协程各一次报错：主循环只收一次就返回，
	// 无缓冲的话另一个协程会永远卡在发送上，每断一条连接漏一个协程
	errChan := make(chan error, 2)
	Manager.Servers.Set(s.Id, s)
	defer func() {
		Manager.Servers.Del(s.Id)
		_ = s.Socket.Close()
		close(s.Send)
	}()

	// 写协程：把 Send 通道里的消息下发给浏览器
	go func() {
		for {
			select {
			case message, ok := <-s.Send:
				if !ok {
					errChan <- errors.New("send channel closed")
					return
				}
				s.SendToClient(string(message), SuccessCode)
			}
		}
	}()

	// 读协程：浏览器只会发心跳，别的消息直接忽略
	go func() {
		for {
			_, message, err := s.Socket.ReadMessage()
			if err != nil {
				errChan <- err
				return
			}
			// 更新心跳时间
			if string(message) == "ping" || string(message) == `"ping"` || string(message) == "'ping'" {
				s.LastTime = time.Now().Unix()
				s.SendToClient("pong", PongCode)
			}
		}
	}()

	// 心跳检查：超过 WssTimeoutDuration 没收到 ping 就断开，清理死连接
	for {
		select {
		case <-time.After(time.Second):
			if time.Now().Unix()-s.LastTime >= config.Config.Env.WssTimeoutDuration {
				s.SendToClient("heartbeat timeout", ErrorCode)
				return
			}
		case err := <-errChan:
			log.Logger.Sugar().Error(s.Id, " ReadAndWrite returned ", err)
			return
		}
	}
}

// Broadcast 把一条消息放进所有在线连接的发送队列
// 队列满了就丢弃这条，慢客户端不能阻塞整个广播
func Broadcast(data []byte) {
	Manager.Servers.RLockRange(func(k, v interface{}) {
		server := v.(*Server)
		select {
		case server.Send <- data:
		default:
		}
	})
}

func wrap(typ string, data []byte) []byte {
	b, _ := json.Marshal(Push{Type: typ, Data: data})
	return b
}

// StartServer 订阅 Redis 频道并一直阻塞，用单独协程运行
// schedule / listener 在别的进程里发布更新，这里收到后实时推给浏览器
func StartServer() {
	log.Logger.Info("WsServer start")
	go db.RedisSubscribe(db.ChanEthPrice, func(data []byte) {
		Broadcast(wrap("price", data))
	})
	db.RedisSubscribe(db.ChanCounterUpdate, func(data []byte) {
		Broadcast(wrap("counter", data))
	})
}
