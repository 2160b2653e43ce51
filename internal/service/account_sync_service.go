package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"dex-cpi-sol/internal/accountsource"
	"dex-cpi-sol/internal/cache"
	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/types"

	"github.com/blocto/solana-go-sdk/client"
)

type slotGetter interface {
	GetSlot(ctx context.Context) (uint64, error)
}

var retryDelay = 2 * time.Second

// AccountSyncService 定期从 RPC 拉取池子账户写入本地缓存，作为 gRPC 账户订阅的兜底
type AccountSyncService struct {
	cache    *cache.AccountCache
	source   accountsource.Source
	slots    slotGetter
	accounts []types.Pubkey
	interval time.Duration
	timeout  time.Duration
	stopChan chan struct{}
	ctx      context.Context
	cancel   func(err error)
}

func NewAccountSyncService(cfg *config.RPCConfig, source accountsource.Source, accounts []types.Pubkey, c *cache.AccountCache) (*AccountSyncService, error) {
	return newAccountSyncService(client.NewClient(cfg.Endpoint), source, accounts, c,
		time.Duration(cfg.SyncIntervalS)*time.Second, time.Duration(cfg.TimeoutMs)*time.Millisecond)
}

func newAccountSyncService(slots slotGetter, source accountsource.Source, accounts []types.Pubkey, c *cache.AccountCache, interval, timeout time.Duration) (*AccountSyncService, error) {
	ctx, cancel := context.WithCancelCause(context.Background())
	s := &AccountSyncService{
		cache:    c,
		source:   source,
		slots:    slots,
		accounts: accounts,
		interval: max(interval, time.Second),
		timeout:  max(timeout, time.Second),
		stopChan: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}

	// 初始化
	const retryCount = 3
	for i := 0; i <= retryCount; i++ {
		if err := s.update(); err != nil {
			logger.Warnf("[AccountSyncService] 第 %d 次 update() 失败: %v", i+1, err)
		} else {
			logger.Infof("[AccountSyncService] 初始账户同步成功: accounts=%d", len(accounts))
			return s, nil
		}
		time.Sleep(retryDelay)
	}
	cancel(errors.New("init failed"))
	return nil, fmt.Errorf("[AccountSyncService] 初始同步失败")
}

func (s *AccountSyncService) Start() {
	s.scheduleNext()
	<-s.stopChan
}

func (s *AccountSyncService) scheduleNext() {
	time.AfterFunc(s.interval, func() {
		if err := s.update(); err != nil {
			logger.Warnf("[AccountSyncService] 周期性更新失败: %v", err)
		}
		select {
		case <-s.ctx.Done():
			return
		default:
			s.scheduleNext()
		}
	})
}

func (s *AccountSyncService) Stop() {
	s.cancel(errors.New("AccountSyncService stop"))
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
}

// update 先取 slot 再取账户，写入的 slot 不晚于数据实际所在 slot，
// gRPC 推送的更新版本不会被回退
func (s *AccountSyncService) update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[AccountSyncService] update panic: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("update panic: %v", r)
		}
	}()
	if len(s.accounts) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	slot, err := s.slots.GetSlot(ctx)
	if err != nil {
		return fmt.Errorf("GetSlot failed: %w", err)
	}
	start := time.Now()
	datas, err := s.source.GetAccounts(ctx, s.accounts)
	if err != nil {
		return fmt.Errorf("GetAccounts failed: %w", err)
	}
	if len(datas) != len(s.accounts) {
		return fmt.Errorf("返回账户数与请求不一致: got=%d want=%d", len(datas), len(s.accounts))
	}

	snapshots := make(map[types.Pubkey]cache.Snapshot, len(datas))
	for i, data := range datas {
		if data == nil {
			logger.Warnf("[AccountSyncService] 账户不存在: %s", s.accounts[i])
			continue
		}
		snapshots[s.accounts[i]] = cache.Snapshot{Slot: slot, Data: data}
	}
	updated := s.cache.Insert(snapshots)
	logger.Debugf("[AccountSyncService] 同步完成: slot=%d, fetched=%d, updated=%d, 耗时=%v",
		slot, len(snapshots), updated, time.Since(start))
	return nil
}
