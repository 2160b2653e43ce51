package cache

import (
	"testing"

	"dex-cpi-sol/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountCache(t *testing.T) {
	c := NewAccountCache()
	a, b := types.Pubkey{1}, types.Pubkey{2}

	n := c.Insert(map[types.Pubkey]Snapshot{
		a: {Slot: 10, Data: []byte{1}},
		b: {Slot: 10, Data: []byte{2}},
	})
	assert.Equal(t, 2, n)

	// 旧 slot 不覆盖
	n = c.Insert(map[types.Pubkey]Snapshot{a: {Slot: 9, Data: []byte{9}}})
	assert.Equal(t, 0, n)
	snap, ok := c.Get(a)
	require.True(t, ok)
	assert.Equal(t, []byte{1}, snap.Data)

	n = c.Insert(map[types.Pubkey]Snapshot{a: {Slot: 11, Data: []byte{3}}})
	assert.Equal(t, 1, n)

	datas, ok := c.GetMany([]types.Pubkey{a, b})
	require.True(t, ok)
	assert.Equal(t, [][]byte{{3}, {2}}, datas)

	// 返回的是副本
	datas[0][0] = 0xff
	snap, _ = c.Get(a)
	assert.Equal(t, byte(3), snap.Data[0])

	_, ok = c.GetMany([]types.Pubkey{a, {3}})
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestAccountCacheSameSlotWriteVersion(t *testing.T) {
	c := NewAccountCache()
	a := types.Pubkey{1}

	// RPC 快照没有 write_version
	require.Equal(t, 1, c.Insert(map[types.Pubkey]Snapshot{a: {Slot: 20, Data: []byte{1}}}))

	// 同一 slot 内的推送按 write_version 递增覆盖
	assert.Equal(t, 1, c.Insert(map[types.Pubkey]Snapshot{a: {Slot: 20, WriteVersion: 5, Data: []byte{2}}}))
	assert.Equal(t, 1, c.Insert(map[types.Pubkey]Snapshot{a: {Slot: 20, WriteVersion: 6, Data: []byte{3}}}))

	// 乱序到达的旧 write_version 与同 slot 的 RPC 结果都不覆盖
	assert.Equal(t, 0, c.Insert(map[types.Pubkey]Snapshot{a: {Slot: 20, WriteVersion: 4, Data: []byte{9}}}))
	assert.Equal(t, 0, c.Insert(map[types.Pubkey]Snapshot{a: {Slot: 20, Data: []byte{9}}}))

	snap, ok := c.Get(a)
	require.True(t, ok)
	assert.Equal(t, uint64(6), snap.WriteVersion)
	assert.Equal(t, []byte{3}, snap.Data)

	// 新 slot 的 write_version 可以更小
	assert.Equal(t, 1, c.Insert(map[types.Pubkey]Snapshot{a: {Slot: 21, WriteVersion: 1, Data: []byte{4}}}))
}
