package cache

import (
	"sync"

	"dex-cpi-sol/internal/types"
)

// Snapshot 某个 slot 观测到的账户数据。
// WriteVersion 来自 gRPC 账户推送，同一 slot 内单调递增；RPC 拉取的快照为 0。
type Snapshot struct {
	Slot         uint64
	WriteVersion uint64
	Data         []byte
}

// newerThan 先比 slot，同一 slot 内再比 write_version
func (s Snapshot) newerThan(old Snapshot) bool {
	if s.Slot != old.Slot {
		return s.Slot > old.Slot
	}
	return s.WriteVersion > old.WriteVersion
}

// AccountCache 进程内账户数据缓存，同一地址只保留 (slot, write_version) 最大的快照
type AccountCache struct {
	mu       sync.RWMutex
	accounts map[types.Pubkey]Snapshot
}

func NewAccountCache() *AccountCache {
	return &AccountCache{
		accounts: make(map[types.Pubkey]Snapshot),
	}
}

// Insert 写入快照，不比已有快照新的写入被忽略；返回实际更新的数量
func (c *AccountCache) Insert(snapshots map[types.Pubkey]Snapshot) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := 0
	for addr, snap := range snapshots {
		if old, ok := c.accounts[addr]; ok && !snap.newerThan(old) {
			continue
		}
		snap.Data = append([]byte(nil), snap.Data...)
		c.accounts[addr] = snap
		updated++
	}
	return updated
}

// Get 返回数据副本
func (c *AccountCache) Get(addr types.Pubkey) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.accounts[addr]
	if !ok {
		return Snapshot{}, false
	}
	snap.Data = append([]byte(nil), snap.Data...)
	return snap, true
}

// GetMany 任一地址缺失时返回 false
func (c *AccountCache) GetMany(addrs []types.Pubkey) ([][]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([][]byte, len(addrs))
	for i, addr := range addrs {
		snap, ok := c.accounts[addr]
		if !ok {
			return nil, false
		}
		out[i] = append([]byte(nil), snap.Data...)
	}
	return out, true
}

func (c *AccountCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.accounts)
}
