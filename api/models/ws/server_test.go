package ws

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"counter-backend/utils"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 起一个跑 ReadAndWrite 的 ws 服务端，跟生产里 wsController 的接法一致
func newHubServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		server := &Server{
			Id:       utils.GetRandomString(16),
			Socket:   conn,
			Send:     make(chan []byte, 8),
			LastTime: time.Now().Unix(),
		}
		go server.ReadAndWrite()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestReadAndWritePingPong(t *testing.T) {
	srv := newHubServer(t)
	conn := dialHub(t, srv)
	defer func() { _ = conn.Close() }()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":1,"data":"pong"}`, string(msg))
}

func TestBroadcastReachesRegisteredConnections(t *testing.T) {
	srv := newHubServer(t)
	conn := dialHub(t, srv)
	defer func() { _ = conn.Close() }()

	// 等连接完成注册
	deadline := time.Now().Add(5 * time.Second)
	for Manager.Servers.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.NotZero(t, Manager.Servers.Len())

	Broadcast(wrap("counter", []byte(`{"chainId":2810,"value":"3"}`)))

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"code":0,"data":"{\"type\":\"counter\",\"data\":{\"chainId\":2810,\"value\":\"3\"}}"}`,
		string(msg))
}

// 断开连接后读写协程必须全部退出，不能随着连接数累积泄漏
func TestReadAndWriteTeardownLeaksNoGoroutines(t *testing.T) {
	srv := newHubServer(t)

	// 先开关一条，把 http 连接池之类的一次性协程排除在基线外
	warm := dialHub(t, srv)
	_ = warm.Close()
	time.Sleep(200 * time.Millisecond)
	before := runtime.NumGoroutine()

	for i := 0; i < 20; i++ {
		conn := dialHub(t, srv)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
		_ = conn.Close()
	}

	// 留足清理时间，协程数回落到基线附近才算没漏
	var after int
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		runtime.GC()
		after = runtime.NumGoroutine()
		if after <= before+2 && Manager.Servers.Len() == 0 {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	assert.LessOrEqual(t, after, before+2,
		"goroutines before=%d after=%d, connection teardown is leaking", before, after)

	// 注册表也要清空，死连接还挂在上面的话广播会越来越慢
	assert.Zero(t, Manager.Servers.Len())
}
