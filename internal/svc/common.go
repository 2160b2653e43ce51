package svc

import (
	"time"

	"dex-cpi-sol/internal/accountsource"
	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// newAccountSource RPC 为数据源，配置了 Redis 时在其前面加一层缓存
func newAccountSource(rc config.RPCConfig, cc config.RedisConfig) (accountsource.Source, redis.UniversalClient) {
	workers := rc.Workers
	if workers <= 0 {
		workers = consts.CpuCount
	}
	var src accountsource.Source = accountsource.NewRPCSource(rc.Endpoint, workers, time.Duration(rc.TimeoutMs)*time.Millisecond)
	if cc.Addr == "" {
		return src, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cc.Addr,
		Password: cc.Password,
		DB:       cc.DB,
	})
	logger.Infof("[Svc] 启用 Redis 账户缓存: addr=%s, ttl=%ds", cc.Addr, cc.TTLSec)
	return accountsource.NewCached(accountsource.NewRedisCache(rdb, time.Duration(cc.TTLSec)*time.Second), src), rdb
}
