package accountsource

import (
	"context"

	"dex-cpi-sol/internal/types"
)

// Source 按地址批量读取账户数据，不存在的账户对应 nil
type Source interface {
	GetAccounts(ctx context.Context, addrs []types.Pubkey) ([][]byte, error)
}

// Cache 账户数据缓存，未命中的位置为 nil
type Cache interface {
	Get(ctx context.Context, addrs []types.Pubkey) ([][]byte, error)
	Put(ctx context.Context, accounts map[types.Pubkey][]byte) error
}
