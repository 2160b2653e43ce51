package watcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"dex-cpi-sol/internal/cache"
	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/types"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"
)

const (
	maxBackoff = 30 * time.Second
	// 连续这么多个 ping 周期收不到任何消息，视为流已卡死
	stallPings = 3
)

// Sink 接收识别出的协议调用
type Sink interface {
	Handle(obs []Observation)
}

type SinkFunc func(obs []Observation)

func (f SinkFunc) Handle(obs []Observation) { f(obs) }

// StreamManager 订阅涉及已注册程序的交易，并可选地跟踪池子账户更新
type StreamManager struct {
	conn   *grpc.ClientConn
	client pb.GeyserClient

	mu       sync.Mutex
	stopped  bool
	attempts int                // 连续失败次数
	cancel   context.CancelFunc // 当前订阅

	lastRecv atomic.Int64 // unix 纳秒
	pingID   atomic.Int32

	conf       config.GrpcConfig
	programs   []string
	classifier *Classifier
	sink       Sink
	accounts   *cache.AccountCache
}

func dialOptions(conf config.GrpcConfig) []grpc.DialOption {
	creds := credentials.NewTLS(&tls.Config{})
	if conf.Insecure {
		creds = insecure.NewCredentials()
	}
	return []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithInitialWindowSize(int32(conf.InitialWindowSize)),
		grpc.WithInitialConnWindowSize(int32(conf.InitialConnWindowSize)),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(conf.MaxCallSendMsgSize),
			grpc.MaxCallRecvMsgSize(conf.MaxCallRecvMsgSize),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                time.Duration(conf.KeepalivePingIntervalSec) * time.Second,
			Timeout:             time.Duration(conf.KeepalivePingTimeoutSec) * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.WithBlock(),
	}
}

func NewStreamManager(conf config.GrpcConfig, programs []types.Pubkey, classifier *Classifier, sink Sink, accounts *cache.AccountCache) (*StreamManager, error) {
	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(conf.ConnectTimeoutSec)*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(dialCtx, conf.Endpoint, dialOptions(conf)...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", conf.Endpoint, err)
	}

	ids := make([]string, len(programs))
	for i, p := range programs {
		ids[i] = p.String()
	}
	return &StreamManager{
		conn:       conn,
		client:     pb.NewGeyserClient(conn),
		conf:       conf,
		programs:   ids,
		classifier: classifier,
		sink:       sink,
		accounts:   accounts,
	}, nil
}

func (m *StreamManager) Start() {
	m.subscribeLoop()
}

func (m *StreamManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
	}
}

// backoff 第 n 次失败后的等待时间，指数增长并封顶
func backoff(n int, base time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	base = max(base, 100*time.Millisecond)
	d := base << min(n-1, 16)
	return min(d, maxBackoff)
}

// subscribeLoop 直到订阅成功或被停止
func (m *StreamManager) subscribeLoop() {
	base := time.Duration(m.conf.ReconnectIntervalSec) * time.Second
	for {
		m.mu.Lock()
		stopped, n := m.stopped, m.attempts
		m.mu.Unlock()
		if stopped {
			return
		}

		time.Sleep(backoff(n, base))
		err := m.subscribe()
		if err == nil {
			return
		}
		logger.Warnf("[Watcher:subscribeLoop] 订阅失败: attempt=%d, err=%v", n+1, err)
	}
}

func buildSubscribeRequest(programs, watchAccounts []string) *pb.SubscribeRequest {
	vote, failed := false, false
	commitment := pb.CommitmentLevel_CONFIRMED
	req := &pb.SubscribeRequest{
		Transactions: map[string]*pb.SubscribeRequestFilterTransactions{
			"cpi_programs": {
				Vote:           &vote,
				Failed:         &failed,
				AccountInclude: programs,
			},
		},
		Commitment: &commitment,
	}
	if len(watchAccounts) > 0 {
		req.Accounts = map[string]*pb.SubscribeRequestFilterAccounts{
			"pools": {Account: watchAccounts},
		}
	}
	return req
}

// subscribe 建立一次订阅，成功后启动收发协程
func (m *StreamManager) subscribe() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return errors.New("stream manager stopped")
	}
	m.attempts++
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	md := metadata.New(map[string]string{"x-token": m.conf.XToken})
	stream, err := m.client.Subscribe(metadata.NewOutgoingContext(ctx, md))
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	if err := m.send(ctx, stream, buildSubscribeRequest(m.programs, m.conf.WatchAccounts)); err != nil {
		return fmt.Errorf("send subscribe request: %w", err)
	}

	m.attempts = 0
	m.lastRecv.Store(time.Now().UnixNano())
	logger.Infof("[Watcher:subscribe] 订阅成功: programs=%d, accounts=%d", len(m.programs), len(m.conf.WatchAccounts))

	go m.recvLoop(ctx, stream)
	go m.pingLoop(ctx, stream)
	return nil
}

// send 带超时发送；超时后放弃等待，由 ctx 取消回收
func (m *StreamManager) send(ctx context.Context, stream pb.Geyser_SubscribeClient, req *pb.SubscribeRequest) error {
	timeout := time.Duration(max(m.conf.SendTimeoutSec, 1)) * time.Second
	done := make(chan error, 1)
	go func() { done <- stream.Send(req) }()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("send timeout (>%v)", timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *StreamManager) recvLoop(ctx context.Context, stream pb.Geyser_SubscribeClient) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[Watcher:recvLoop] panic: %v\nstack: %s", r, debug.Stack())
			m.resubscribe(ctx)
		}
	}()

	for ctx.Err() == nil {
		update, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, io.EOF) {
				logger.Warnf("[Watcher:recvLoop] 服务端关闭了流")
			} else {
				logger.Warnf("[Watcher:recvLoop] 接收失败: %v", err)
			}
			m.resubscribe(ctx)
			return
		}
		m.lastRecv.Store(time.Now().UnixNano())
		m.handleUpdate(update)
	}
}

func (m *StreamManager) handleUpdate(update *pb.SubscribeUpdate) {
	switch u := update.GetUpdateOneof().(type) {
	case *pb.SubscribeUpdate_Transaction:
		if u.Transaction == nil {
			return
		}
		obs, misses, err := m.classifier.ClassifyTx(u.Transaction.Slot, u.Transaction.Transaction)
		if err != nil {
			logger.Debugf("[Watcher:handleUpdate] 跳过交易: slot=%d, err=%v", u.Transaction.Slot, err)
			return
		}
		if misses > 0 {
			logger.Debugf("[Watcher:handleUpdate] 未识别的协议指令: slot=%d, count=%d", u.Transaction.Slot, misses)
		}
		if len(obs) > 0 && m.sink != nil {
			m.sink.Handle(obs)
		}

	case *pb.SubscribeUpdate_Account:
		if m.accounts == nil || u.Account == nil || u.Account.Account == nil {
			return
		}
		info := u.Account.Account
		addr, ok := types.PubkeyFromBytes(info.Pubkey)
		if !ok {
			return
		}
		m.accounts.Insert(map[types.Pubkey]cache.Snapshot{
			addr: {Slot: u.Account.Slot, WriteVersion: info.WriteVersion, Data: info.Data},
		})

	case *pb.SubscribeUpdate_Pong:
		if u.Pong != nil {
			logger.Debugf("[Watcher:handleUpdate] pong: id=%d", u.Pong.Id)
		}
	}
}

// stalled 距上次收到消息是否已超过 limit
func (m *StreamManager) stalled(now time.Time, limit time.Duration) bool {
	last := m.lastRecv.Load()
	return last > 0 && now.Sub(time.Unix(0, last)) > limit
}

// pingLoop 定期发送应用层 ping；长时间没有任何消息时主动重订阅
func (m *StreamManager) pingLoop(ctx context.Context, stream pb.Geyser_SubscribeClient) {
	interval := time.Duration(max(m.conf.StreamPingIntervalSec, 1)) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if m.stalled(now, stallPings*interval) {
				logger.Warnf("[Watcher:pingLoop] %v 内未收到任何消息, 重新订阅", stallPings*interval)
				m.resubscribe(ctx)
				return
			}
			req := &pb.SubscribeRequest{Ping: &pb.SubscribeRequestPing{Id: m.pingID.Add(1)}}
			if err := m.send(ctx, stream, req); err != nil {
				logger.Warnf("[Watcher:pingLoop] ping 发送失败: %v", err)
			}
		}
	}
}

// resubscribe 只对仍是当前订阅的 ctx 生效，收发两个协程同时出错时只重连一次
func (m *StreamManager) resubscribe(ctx context.Context) {
	m.mu.Lock()
	if m.stopped || ctx.Err() != nil {
		m.mu.Unlock()
		return
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	go m.subscribeLoop()
}
