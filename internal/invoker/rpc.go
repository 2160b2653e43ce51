package invoker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/types"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/rpc"
	sdktypes "github.com/blocto/solana-go-sdk/types"
)

var (
	ErrSeedsUnsupported = errors.New("program-derived signer seeds cannot be used off-chain")
	ErrMissingSigner    = errors.New("missing signer keypair")
	ErrSimulationFailed = errors.New("simulation failed")
)

type Mode uint8

const (
	ModeSimulate Mode = iota
	ModeSend
)

// ParseMode 配置值转换，仅支持 simulate / send
func ParseMode(s string) (Mode, error) {
	switch s {
	case "simulate", "":
		return ModeSimulate, nil
	case "send":
		return ModeSend, nil
	}
	return 0, fmt.Errorf("unknown rpc mode %q", s)
}

// rpcClient *client.Client 的子集
type rpcClient interface {
	GetLatestBlockhash(ctx context.Context) (rpc.GetLatestBlockhashValue, error)
	SimulateTransaction(ctx context.Context, tx sdktypes.Transaction) (client.SimulateTransaction, error)
	SendTransaction(ctx context.Context, tx sdktypes.Transaction) (string, error)
}

// RPCInvoker 将每条指令包装为单指令交易，经 RPC 模拟或发送
type RPCInvoker struct {
	client  rpcClient
	mode    Mode
	timeout time.Duration
	payer   sdktypes.Account
	keyring map[types.Pubkey]sdktypes.Account
}

func NewRPCInvoker(endpoint string, mode Mode, timeout time.Duration, payer sdktypes.Account, signers ...sdktypes.Account) *RPCInvoker {
	return newRPCInvoker(client.NewClient(endpoint), mode, timeout, payer, signers...)
}

func newRPCInvoker(c rpcClient, mode Mode, timeout time.Duration, payer sdktypes.Account, signers ...sdktypes.Account) *RPCInvoker {
	keyring := make(map[types.Pubkey]sdktypes.Account, len(signers)+1)
	keyring[types.Pubkey(payer.PublicKey)] = payer
	for _, s := range signers {
		keyring[types.Pubkey(s.PublicKey)] = s
	}
	return &RPCInvoker{client: c, mode: mode, timeout: timeout, payer: payer, keyring: keyring}
}

func (r *RPCInvoker) Invoke(ctx context.Context, ix cpi.Instruction, seeds []cpi.Signer) error {
	if len(seeds) > 0 {
		return ErrSeedsUnsupported
	}

	signers := []sdktypes.Account{r.payer}
	for _, pk := range ix.Signers() {
		if pk == types.Pubkey(r.payer.PublicKey) {
			continue
		}
		acc, ok := r.keyring[pk]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingSigner, pk)
		}
		signers = append(signers, acc)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	bh, err := r.client.GetLatestBlockhash(ctx)
	if err != nil {
		return fmt.Errorf("get latest blockhash: %w", err)
	}

	tx, err := sdktypes.NewTransaction(sdktypes.NewTransactionParam{
		Message: sdktypes.NewMessage(sdktypes.NewMessageParam{
			FeePayer:        common.PublicKey(r.payer.PublicKey),
			RecentBlockhash: bh.Blockhash,
			Instructions:    []sdktypes.Instruction{ToSDK(ix)},
		}),
		Signers: signers,
	})
	if err != nil {
		return fmt.Errorf("build transaction: %w", err)
	}

	switch r.mode {
	case ModeSend:
		sig, err := r.client.SendTransaction(ctx, tx)
		if err != nil {
			return fmt.Errorf("send transaction: %w", err)
		}
		logger.Infof("[Invoker:RPC] 交易已发送: program=%s, sig=%s", ix.ProgramID, sig)
		return nil
	default:
		res, err := r.client.SimulateTransaction(ctx, tx)
		if err != nil {
			return fmt.Errorf("simulate transaction: %w", err)
		}
		if res.Err != nil {
			logger.Warnf("[Invoker:RPC] 模拟失败: program=%s, err=%v, logs=%d", ix.ProgramID, res.Err, len(res.Logs))
			return fmt.Errorf("%w: %v", ErrSimulationFailed, res.Err)
		}
		logger.Debugf("[Invoker:RPC] 模拟成功: program=%s, logs=%d", ix.ProgramID, len(res.Logs))
		return nil
	}
}
