package accountsource

import (
	"context"
	"fmt"

	"dex-cpi-sol/internal/cache"
	"dex-cpi-sol/internal/types"
)

// Snapshots 优先读取本地账户缓存（gRPC 推送与 RPC 同步写入），未命中的地址直接回源。
// 回源结果不写入本地缓存：没有 slot 的数据写进去后不会再被刷新。
type Snapshots struct {
	cache  *cache.AccountCache
	origin Source
}

func NewSnapshots(c *cache.AccountCache, origin Source) *Snapshots {
	return &Snapshots{cache: c, origin: origin}
}

func (s *Snapshots) GetAccounts(ctx context.Context, addrs []types.Pubkey) ([][]byte, error) {
	out := make([][]byte, len(addrs))
	var (
		missIdx   []int
		missAddrs []types.Pubkey
	)
	for i, addr := range addrs {
		if snap, ok := s.cache.Get(addr); ok {
			out[i] = snap.Data
			continue
		}
		missIdx = append(missIdx, i)
		missAddrs = append(missAddrs, addr)
	}
	if len(missAddrs) == 0 {
		return out, nil
	}

	fetched, err := s.origin.GetAccounts(ctx, missAddrs)
	if err != nil {
		return nil, err
	}
	if len(fetched) != len(missAddrs) {
		return nil, fmt.Errorf("回源账户数不一致: got=%d want=%d", len(fetched), len(missAddrs))
	}
	for j, data := range fetched {
		out[missIdx[j]] = data
	}
	return out, nil
}
