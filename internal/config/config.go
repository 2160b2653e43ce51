package config

import (
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/pkg/mq"
)

// go-zero 的 conf 按 json tag 映射，yaml tag 供 yaml.v3 直接解析时使用

type LogConfig struct {
	Format   string `json:"format,default=console" yaml:"format"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:"log_dir,optional" yaml:"log_dir"`      // 日志目录（可为相对路径或绝对路径）
	Level    string `json:"level,default=info" yaml:"level"`      // 日志级别：debug / info / warn / error
	Compress bool   `json:"compress,optional" yaml:"compress"`    // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// RPCConfig 表示 Solana RPC 节点配置
type RPCConfig struct {
	// RPC 地址
	Endpoint string `json:"endpoint,default=https://api.mainnet-beta.solana.com" yaml:"endpoint"`

	TimeoutMs     int    `json:"timeout_ms,default=3000" yaml:"timeout_ms"`               // 单次请求超时（毫秒）
	Workers       int    `json:"workers,default=4" yaml:"workers"`                        // getMultipleAccounts 并发数
	Mode          string `json:"mode,default=simulate,options=simulate|send" yaml:"mode"` // 调用方式：simulate / send
	PayerKey      string `json:"payer_key,optional" yaml:"payer_key"`                     // 付费账户私钥（base58），为空时随机生成
	SyncIntervalS int    `json:"sync_interval_s,default=10" yaml:"sync_interval_s"`       // 账户同步间隔（秒）
}

// RedisConfig 表示账户数据的 Redis 缓存配置
type RedisConfig struct {
	Addr     string `json:"addr,optional" yaml:"addr"` // 为空时不启用缓存
	Password string `json:"password,optional" yaml:"password"`
	DB       int    `json:"db,optional" yaml:"db"`
	TTLSec   int    `json:"ttl_sec,default=30" yaml:"ttl_sec"` // 缓存过期时间（秒）
}

// KafkaProducerConfig 表示 Kafka 生产者相关配置
type KafkaProducerConfig struct {
	Brokers       string `json:"brokers,optional" yaml:"brokers"`                     // Kafka broker 地址，多个用英文逗号分隔
	BatchSize     int    `json:"batch_size,default=65536" yaml:"batch_size"`          // 批处理大小（单位字节）
	LingerMs      int    `json:"linger_ms,default=5" yaml:"linger_ms"`                // 批处理最大延迟（毫秒）
	Topic         string `json:"topic,default=dex-cpi-instructions" yaml:"topic"`     // 指令信封的 topic
	Partitions    int    `json:"partitions,default=1" yaml:"partitions"`              // topic 的分区数
	SendTimeoutMs int    `json:"send_timeout_ms,default=3000" yaml:"send_timeout_ms"` // 单条消息等待 ack 的超时
}

func (c *KafkaProducerConfig) ToKafkaOption() mq.KafkaProducerOption {
	return mq.KafkaProducerOption{
		Brokers:   c.Brokers,
		BatchSize: c.BatchSize,
		LingerMs:  c.LingerMs,
		Topics:    []mq.TopicOption{{Topic: c.Topic, Partitions: c.Partitions}},
	}
}

// GrpcConfig 是 yellowstone 订阅配置
type GrpcConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`          // gRPC 服务端地址
	XToken   string `json:"x_token,optional" yaml:"x_token"`   // x-token 认证
	Insecure bool   `json:"insecure,optional" yaml:"insecure"` // 本地调试时不走 TLS

	// 应用级逻辑心跳（ping）配置
	StreamPingIntervalSec int `json:"stream_ping_interval_sec,default=10" yaml:"stream_ping_interval_sec"`

	// gRPC Keepalive 底层连接检测配置
	KeepalivePingIntervalSec int `json:"keepalive_ping_interval_sec,default=30" yaml:"keepalive_ping_interval_sec"`
	KeepalivePingTimeoutSec  int `json:"keepalive_ping_timeout_sec,default=10" yaml:"keepalive_ping_timeout_sec"`

	// 窗口大小与消息体限制
	InitialWindowSize     int `json:"initial_window_size,default=4194304" yaml:"initial_window_size"`
	InitialConnWindowSize int `json:"initial_conn_window_size,default=8388608" yaml:"initial_conn_window_size"`
	MaxCallSendMsgSize    int `json:"max_call_send_msg_size,default=4194304" yaml:"max_call_send_msg_size"`
	MaxCallRecvMsgSize    int `json:"max_call_recv_msg_size,default=67108864" yaml:"max_call_recv_msg_size"`

	// 超时与重连策略
	ReconnectIntervalSec int `json:"reconnect_interval_sec,default=3" yaml:"reconnect_interval_sec"`
	ConnectTimeoutSec    int `json:"connect_timeout_sec,default=10" yaml:"connect_timeout_sec"`
	SendTimeoutSec       int `json:"send_timeout_sec,default=5" yaml:"send_timeout_sec"`

	// 额外订阅的账户（池子等），更新写入本地账户缓存
	WatchAccounts []string `json:"watch_accounts,optional" yaml:"watch_accounts"`
	// 需要定期解析状态的池子，格式 <dex>:<address>，地址会自动加入账户订阅
	WatchPools []string `json:"watch_pools,optional" yaml:"watch_pools"`
}

// CpiConfig 驱动 cmd/cpi：构造并投递指令
type CpiConfig struct {
	LogConf           LogConfig           `json:"logger" yaml:"logger"`
	RPC               RPCConfig           `json:"rpc" yaml:"rpc"`
	Redis             RedisConfig         `json:"redis,optional" yaml:"redis"`
	KafkaProducerConf KafkaProducerConfig `json:"kafka_producer,optional" yaml:"kafka_producer"`

	Invoker  string `json:"invoker,default=collect,options=collect|rpc|kafka" yaml:"invoker"` // 指令投递方式
	Captures string `json:"captures,optional" yaml:"captures"`                                 // 原始指令样本文件
}

// WatchConfig 驱动 cmd/watch：订阅并识别链上 DEX 指令
type WatchConfig struct {
	LogConf LogConfig   `json:"logger" yaml:"logger"`
	Grpc    GrpcConfig  `json:"grpc" yaml:"grpc"`
	RPC     RPCConfig   `json:"rpc,optional" yaml:"rpc"`
	Redis   RedisConfig `json:"redis,optional" yaml:"redis"`
}
