package service

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"
	"time"

	"dex-cpi-sol/internal/accountsource"
	"dex-cpi-sol/internal/logic/inspect"
	"dex-cpi-sol/internal/pkg/logger"
)

// PoolReportService 定期解析关注的池子状态并输出日志。
// source 应以本地账户缓存为先，报告反映的是订阅推送的最新数据。
type PoolReportService struct {
	source   accountsource.Source
	pools    []inspect.Target
	interval time.Duration
	timeout  time.Duration
	stopChan chan struct{}
	ctx      context.Context
	cancel   func(err error)
}

func NewPoolReportService(source accountsource.Source, pools []inspect.Target, interval, timeout time.Duration) *PoolReportService {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &PoolReportService{
		source:   source,
		pools:    pools,
		interval: max(interval, time.Second),
		timeout:  max(timeout, time.Second),
		stopChan: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *PoolReportService) Start() {
	s.scheduleNext()
	<-s.stopChan
}

func (s *PoolReportService) scheduleNext() {
	time.AfterFunc(s.interval, func() {
		s.Report()
		select {
		case <-s.ctx.Done():
			return
		default:
			s.scheduleNext()
		}
	})
}

func (s *PoolReportService) Stop() {
	s.cancel(errors.New("PoolReportService stop"))
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
}

// Report 逐个解析池子，单个失败不影响其余；返回成功的报告
func (s *PoolReportService) Report() []*inspect.Report {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[PoolReportService] report panic: %v\n%s", r, debug.Stack())
		}
	}()

	reports := make([]*inspect.Report, 0, len(s.pools))
	for _, p := range s.pools {
		ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
		r, err := inspect.Inspect(ctx, s.source, p.Dex, p.Pool)
		cancel()
		if err != nil {
			logger.Warnf("[PoolReportService] 解析失败: pool=%s, err=%v", p, err)
			continue
		}
		fields := make([]string, 0, len(r.Fields))
		for _, f := range r.Fields {
			fields = append(fields, f.Key+"="+f.Value)
		}
		logger.Infof("[PoolReportService] %s %s", p, strings.Join(fields, " "))
		reports = append(reports, r)
	}
	return reports
}
