package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"dex-cpi-sol/internal/cache"
	"dex-cpi-sol/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlots struct {
	slot atomic.Uint64
	err  error
}

func (f *fakeSlots) GetSlot(context.Context) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.slot.Load(), nil
}

type fakeSource struct {
	data  map[types.Pubkey][]byte
	calls atomic.Int32
}

func (f *fakeSource) GetAccounts(_ context.Context, addrs []types.Pubkey) ([][]byte, error) {
	f.calls.Add(1)
	out := make([][]byte, len(addrs))
	for i, a := range addrs {
		out[i] = f.data[a]
	}
	return out, nil
}

func key(b byte) types.Pubkey {
	var p types.Pubkey
	p[0] = b
	return p
}

func TestAccountSyncInitial(t *testing.T) {
	slots := &fakeSlots{}
	slots.slot.Store(100)
	src := &fakeSource{data: map[types.Pubkey][]byte{key(1): {1, 2}}}
	c := cache.NewAccountCache()

	s, err := newAccountSyncService(slots, src, []types.Pubkey{key(1), key(2)}, c, time.Second, time.Second)
	require.NoError(t, err)
	defer s.Stop()

	snap, ok := c.Get(key(1))
	require.True(t, ok)
	assert.Equal(t, uint64(100), snap.Slot)
	assert.Equal(t, []byte{1, 2}, snap.Data)

	// 不存在的账户不写入
	_, ok = c.Get(key(2))
	assert.False(t, ok)
}

func TestAccountSyncDoesNotRollBack(t *testing.T) {
	slots := &fakeSlots{}
	slots.slot.Store(100)
	src := &fakeSource{data: map[types.Pubkey][]byte{key(1): {1}}}
	c := cache.NewAccountCache()
	c.Insert(map[types.Pubkey]cache.Snapshot{key(1): {Slot: 200, Data: []byte{9}}})

	s, err := newAccountSyncService(slots, src, []types.Pubkey{key(1)}, c, time.Second, time.Second)
	require.NoError(t, err)
	defer s.Stop()

	snap, _ := c.Get(key(1))
	assert.Equal(t, uint64(200), snap.Slot)
	assert.Equal(t, []byte{9}, snap.Data)
}

func TestAccountSyncInitFailure(t *testing.T) {
	old := retryDelay
	retryDelay = 0
	defer func() { retryDelay = old }()

	slots := &fakeSlots{err: errors.New("rpc down")}
	_, err := newAccountSyncService(slots, &fakeSource{}, []types.Pubkey{key(1)}, cache.NewAccountCache(), time.Second, time.Second)
	assert.Error(t, err)
}

func TestAccountSyncStartStop(t *testing.T) {
	slots := &fakeSlots{}
	slots.slot.Store(1)
	src := &fakeSource{data: map[types.Pubkey][]byte{key(1): {1}}}
	s, err := newAccountSyncService(slots, src, []types.Pubkey{key(1)}, cache.NewAccountCache(), time.Second, time.Second)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		s.Start()
		close(done)
	}()
	s.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start 未在 Stop 后返回")
	}
	// 重复 Stop 不 panic
	s.Stop()
	assert.Equal(t, int32(1), src.calls.Load())
}
