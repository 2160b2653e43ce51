package accountsource

import (
	"context"
	"fmt"
	"time"

	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/types"
	"dex-cpi-sol/pkg/utils"

	"github.com/blocto/solana-go-sdk/client"
)

// getMultipleAccounts 单次请求的地址上限
const maxAccountsPerRequest = 100

type multipleAccountsGetter interface {
	GetMultipleAccounts(ctx context.Context, addrs []string) ([]client.AccountInfo, error)
}

// RPCSource 通过 getMultipleAccounts 读取账户，超过上限时分批并发请求
type RPCSource struct {
	client  multipleAccountsGetter
	workers int
	timeout time.Duration
}

func NewRPCSource(endpoint string, workers int, timeout time.Duration) *RPCSource {
	return &RPCSource{client: client.NewClient(endpoint), workers: workers, timeout: timeout}
}

type chunkResult struct {
	datas [][]byte
	err   error
}

func (s *RPCSource) GetAccounts(ctx context.Context, addrs []types.Pubkey) ([][]byte, error) {
	if len(addrs) == 0 {
		return nil, nil
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	chunks := utils.Chunk(addrs, maxAccountsPerRequest)
	results := utils.ParallelMap(chunks, s.workers, func(chunk []types.Pubkey) chunkResult {
		keys := make([]string, len(chunk))
		for i, addr := range chunk {
			keys[i] = addr.String()
		}
		infos, err := s.client.GetMultipleAccounts(ctx, keys)
		if err != nil {
			return chunkResult{err: fmt.Errorf("GetMultipleAccounts failed: %w", err)}
		}
		if len(infos) != len(chunk) {
			return chunkResult{err: fmt.Errorf("返回账户数与请求不一致: got=%d want=%d", len(infos), len(chunk))}
		}
		datas := make([][]byte, len(infos))
		for i, info := range infos {
			if len(info.Data) > 0 {
				datas[i] = info.Data
			}
		}
		return chunkResult{datas: datas}
	})

	out := make([][]byte, 0, len(addrs))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, r.datas...)
	}
	logger.Debugf("[AccountSource:RPC] GetMultipleAccounts 成功: 账户数=%d, 批次=%d, 耗时=%v", len(addrs), len(chunks), time.Since(start))
	return out, nil
}
