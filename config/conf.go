package config

var Config *Conf

// 项目全局配置文件

type Conf struct {
	// 经典的数据库连接池配置（最大空闲、最大连接数等）
	Mysql MysqlConfig `toml:"mysql"`
	Redis RedisConfig `toml:"redis"`
	// 包含了 ChainId（链 ID）、NetUrl（节点 RPC 地址）以及 Counter 合约地址。
	// 后端通过 go-ethereum 库与 Morph（以太坊 L2）交互
	TestNet TestNetConfig `toml:"testnet"`
	MainNet MainNetConfig `toml:"mainnet"`
	// 事件同步参数：起始区块、确认数、批量大小、worker数量
	Sync         SyncConfig         `toml:"sync"`
	Email        EmailConfig        `toml:"email"`
	DefaultAdmin DefaultAdminConfig `toml:"default_admin"`
	// (阈值控制): GasAccountThresholdEth 管理员账户余额低于该值时触发邮件告警
	Threshold ThresholdConfig `toml:"threshold"`
	// 对应 JWT 工具和 Email 发送工具的参数
	Jwt JwtConfig `toml:"jwt"`
	// (运行环境): 定义了 API 端口、版本以及关键的超时时间（如 TaskDuration 任务周期、WssTimeoutDuration WebSocket 超时）
	Env EnvConfig `toml:"env"`
}

type EnvConfig struct {
	Port               string `toml:"port"`
	Version            string `toml:"version"`
	Protocol           string `toml:"protocol"`
	DomainName         string `toml:"domain_name"`
	TaskDuration       int64  `toml:"task_duration"`
	WssTimeoutDuration int64  `toml:"wss_timeout_duration"`
}

type ThresholdConfig struct {
	GasAccountThresholdEth string `toml:"gas_account_threshold_eth"`
}

type EmailConfig struct {
	Username string   `toml:"username"`
	Pwd      string   `toml:"pwd"`
	Host     string   `toml:"host"`
	Port     string   `toml:"port"`
	From     string   `toml:"from"`
	Subject  string   `toml:"subject"`
	To       []string `toml:"to"`
	Cc       []string `toml:"cc"`
}

type DefaultAdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type JwtConfig struct {
	SecretKey  string `toml:"secret_key"`
	ExpireTime int    `toml:"expire_time"` // duration, s
}

type MysqlConfig struct {
	Address      string `toml:"address"`
	Port         string `toml:"port"`
	DbName       string `toml:"db_name"`
	UserName     string `toml:"user_name"`
	Password     string `toml:"password"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifeTime  int    `toml:"max_life_time"`
}

// 测试网：Morph Holesky。CounterAddress 部署后由 deploy 命令打印再填入
type TestNetConfig struct {
	ChainId        string `toml:"chain_id"`
	NetUrl         string `toml:"net_url"`
	WsUrl          string `toml:"ws_url"`
	CounterAddress string `toml:"counter_address"`
	ExplorerUrl    string `toml:"explorer_url"`
	ExplorerApi    string `toml:"explorer_api"`
	BridgeUrl      string `toml:"bridge_url"`
}

type MainNetConfig struct {
	ChainId        string `toml:"chain_id"`
	NetUrl         string `toml:"net_url"`
	WsUrl          string `toml:"ws_url"`
	CounterAddress string `toml:"counter_address"`
	ExplorerUrl    string `toml:"explorer_url"`
	ExplorerApi    string `toml:"explorer_api"`
	BridgeUrl      string `toml:"bridge_url"`
}

type SyncConfig struct {
	// 事件扫描的起始区块（合约部署所在区块）
	StartBlock uint64 `toml:"start_block"`

	// 确认数：扫描时与最新区块保持的距离，防止链重组导致假数据
	Confirmations uint64 `toml:"confirmations"`

	// 单次 eth_getLogs 的最大区块跨度，节点对太宽的范围会直接拒绝
	BatchSize uint64 `toml:"batch_size"`

	// 处理日志的 worker 协程数量
	WorkerNum int `toml:"worker_num"`

	// 日志 channel 缓冲大小（必须大buffer，防止补扫时阻塞订阅）
	LogBuffer int `toml:"log_buffer"`
}

type RedisConfig struct {
	// Redis服务器地址，如 "127.0.0.1" 或 "redis-server"
	Address string `toml:"address"`

	// Redis服务端口，通常是 "6379"
	Port string `toml:"port"`

	// 使用的数据库索引，默认为 0（Redis默认有16个db）
	Db int `toml:"db"`

	// Redis访问密码，如果没有设置则留空
	Password string `toml:"password"`

	// 连接池中最大空闲连接数
	MaxIdle int `toml:"max_idle"`

	// 连接池在同一时间能够分配的最大连接数，设为 0 表示不限制
	MaxActive int `toml:"max_active"`

	// 空闲连接的超时时间（秒）
	IdleTimeout int `toml:"idle_timeout"`
}
