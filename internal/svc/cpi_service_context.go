package svc

import (
	"fmt"
	"time"

	"dex-cpi-sol/internal/accountsource"
	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/invoker"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/pkg/mq"
	"dex-cpi-sol/internal/protocols"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/redis/go-redis/v9"
)

// CpiServiceContext 包含指令构造与投递所需的资源
type CpiServiceContext struct {
	Config    config.CpiConfig
	Registry  *cpi.Registry
	Accounts  accountsource.Source
	Invoker   cpi.Invoker
	Collector *invoker.Collector // 仅 invoker=collect 时非空
	Producer  *kafka.Producer    // 仅 invoker=kafka 时非空
	Redis     redis.UniversalClient
}

func NewCpiServiceContext(c config.CpiConfig) (*CpiServiceContext, error) {
	ctx := &CpiServiceContext{
		Config:   c,
		Registry: protocols.Registry(),
	}
	ctx.Accounts, ctx.Redis = newAccountSource(c.RPC, c.Redis)

	switch c.Invoker {
	case "collect", "":
		ctx.Collector = invoker.NewCollector()
		ctx.Invoker = ctx.Collector
	case "rpc":
		inv, err := newRPCInvoker(c.RPC)
		if err != nil {
			ctx.Close()
			return nil, err
		}
		ctx.Invoker = inv
	case "kafka":
		producer, err := mq.NewKafkaProducer(c.KafkaProducerConf.ToKafkaOption())
		if err != nil {
			logger.Errorf("Kafka producer 初始化失败: %v", err)
			ctx.Close()
			return nil, err
		}
		ctx.Producer = producer
		kc := c.KafkaProducerConf
		ctx.Invoker = invoker.NewKafkaInvoker(producer, kc.Topic, kc.Partitions, time.Duration(kc.SendTimeoutMs)*time.Millisecond)
	default:
		ctx.Close()
		return nil, fmt.Errorf("unknown invoker %q", c.Invoker)
	}

	logger.Infof("CPI 服务上下文初始化完成: invoker=%s, programs=%d", c.Invoker, len(ctx.Registry.Programs()))
	return ctx, nil
}

func newRPCInvoker(c config.RPCConfig) (*invoker.RPCInvoker, error) {
	mode, err := invoker.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	var payer sdktypes.Account
	if c.PayerKey != "" {
		if payer, err = sdktypes.AccountFromBase58(c.PayerKey); err != nil {
			return nil, fmt.Errorf("invalid payer key: %w", err)
		}
	} else {
		// 未配置付费账户时只能模拟
		if mode == invoker.ModeSend {
			return nil, fmt.Errorf("rpc mode send requires payer_key")
		}
		payer = sdktypes.NewAccount()
	}
	logger.Infof("RPC invoker: endpoint=%s, mode=%s, payer=%s", c.Endpoint, c.Mode, payer.PublicKey.ToBase58())
	return invoker.NewRPCInvoker(c.Endpoint, mode, time.Duration(c.TimeoutMs)*time.Millisecond, payer), nil
}

// Close 关闭服务上下文中的资源
func (ctx *CpiServiceContext) Close() {
	if ctx.Producer != nil {
		mq.CloseProducer(ctx.Producer, 3*time.Second)
	}
	if ctx.Redis != nil {
		_ = ctx.Redis.Close()
	}
}
