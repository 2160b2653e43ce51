package svc

import (
	"slices"

	"dex-cpi-sol/internal/accountsource"
	"dex-cpi-sol/internal/cache"
	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/logic/inspect"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/protocols"
	"dex-cpi-sol/internal/types"
	"dex-cpi-sol/internal/watcher"

	"github.com/redis/go-redis/v9"
)

// WatchServiceContext 包含链上观测所需的资源
type WatchServiceContext struct {
	Config        config.WatchConfig
	Registry      *cpi.Registry
	Classifier    *watcher.Classifier
	Sink          *watcher.LogSink
	AccountCache  *cache.AccountCache
	Accounts      accountsource.Source // RPC（可选 Redis），账户同步的数据源
	Snapshots     accountsource.Source // 本地账户缓存优先，池子解析走这里
	WatchAccounts []types.Pubkey
	WatchPools    []inspect.Target
	Redis         redis.UniversalClient
}

func NewWatchServiceContext(c config.WatchConfig) (*WatchServiceContext, error) {
	watch := make([]types.Pubkey, 0, len(c.Grpc.WatchAccounts))
	for _, s := range c.Grpc.WatchAccounts {
		pk, err := types.TryPubkeyFromBase58(s)
		if err != nil {
			logger.Errorf("watch_accounts 地址无效: %s, err=%v", s, err)
			return nil, err
		}
		watch = append(watch, pk)
	}

	c.Grpc.WatchAccounts = slices.Clone(c.Grpc.WatchAccounts)
	pools := make([]inspect.Target, 0, len(c.Grpc.WatchPools))
	for _, s := range c.Grpc.WatchPools {
		tg, err := inspect.ParseTarget(s)
		if err != nil {
			logger.Errorf("watch_pools 配置无效: %s, err=%v", s, err)
			return nil, err
		}
		pools = append(pools, tg)
		if !slices.Contains(watch, tg.Pool) {
			watch = append(watch, tg.Pool)
			c.Grpc.WatchAccounts = append(c.Grpc.WatchAccounts, tg.Pool.String())
		}
	}

	reg := protocols.Registry()
	ctx := &WatchServiceContext{
		Config:        c,
		Registry:      reg,
		Classifier:    watcher.NewClassifier(reg),
		Sink:          watcher.NewLogSink(),
		AccountCache:  cache.NewAccountCache(),
		WatchAccounts: watch,
		WatchPools:    pools,
	}
	ctx.Accounts, ctx.Redis = newAccountSource(c.RPC, c.Redis)
	ctx.Snapshots = accountsource.NewSnapshots(ctx.AccountCache, ctx.Accounts)

	logger.Infof("Watch 服务上下文初始化完成: programs=%d, watch_accounts=%d, watch_pools=%d", len(reg.Programs()), len(watch), len(pools))
	return ctx, nil
}

func (ctx *WatchServiceContext) Close() {
	if ctx.Redis != nil {
		_ = ctx.Redis.Close()
	}
}
