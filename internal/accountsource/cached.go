package accountsource

import (
	"context"
	"fmt"

	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/types"
)

// Cached 先读缓存，未命中的地址回源后写回缓存。缓存故障只记录日志，不影响回源。
type Cached struct {
	cache  Cache
	origin Source
}

func NewCached(cache Cache, origin Source) *Cached {
	return &Cached{cache: cache, origin: origin}
}

func (c *Cached) GetAccounts(ctx context.Context, addrs []types.Pubkey) ([][]byte, error) {
	out, err := c.cache.Get(ctx, addrs)
	if err != nil {
		logger.Warnf("[AccountSource:Cached] 读取缓存失败: %v", err)
		out = nil
	}
	if len(out) != len(addrs) {
		out = make([][]byte, len(addrs))
	}

	var (
		missIdx   []int
		missAddrs []types.Pubkey
	)
	for i, data := range out {
		if data == nil {
			missIdx = append(missIdx, i)
			missAddrs = append(missAddrs, addrs[i])
		}
	}
	if len(missAddrs) == 0 {
		return out, nil
	}

	fetched, err := c.origin.GetAccounts(ctx, missAddrs)
	if err != nil {
		return nil, err
	}
	if len(fetched) != len(missAddrs) {
		return nil, fmt.Errorf("回源账户数不一致: got=%d want=%d", len(fetched), len(missAddrs))
	}
	fill := make(map[types.Pubkey][]byte, len(fetched))
	for j, data := range fetched {
		out[missIdx[j]] = data
		if data != nil {
			fill[missAddrs[j]] = data
		}
	}
	if err := c.cache.Put(ctx, fill); err != nil {
		logger.Warnf("[AccountSource:Cached] 写入缓存失败: %v", err)
	}
	return out, nil
}
