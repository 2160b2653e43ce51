package watcher

import (
	"testing"

	"dex-cpi-sol/internal/cache"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/protocols"
	"dex-cpi-sol/internal/protocols/raydiumv4"
	"dex-cpi-sol/internal/protocols/solfiv2"
	"dex-cpi-sol/internal/types"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(b byte) types.Pubkey {
	var p types.Pubkey
	for i := range p {
		p[i] = b
	}
	return p
}

// buildTx 账户表：0 签名者，1..18 普通账户，19 SolFi，20 Raydium v4，21 Token Program
func buildTx(t *testing.T) *pb.SubscribeUpdateTransactionInfo {
	t.Helper()
	keys := [][]byte{key(1).Bytes()}
	for i := 2; i <= 19; i++ {
		keys = append(keys, key(byte(i)).Bytes())
	}
	keys = append(keys, consts.SolFiV2Program.Bytes(), consts.RaydiumV4Program.Bytes(), consts.TokenProgram.Bytes())

	seq := func(n int) []byte {
		out := make([]byte, n)
		for i := range out {
			out[i] = byte(i % 19)
		}
		return out
	}
	solfi, err := solfiv2.Sell(1_000_000, 0).Bytes()
	require.NoError(t, err)
	v4 := raydiumv4.SwapBaseInArgs{AmountIn: 5, MinimumAmountOut: 1}.Bytes()

	return &pb.SubscribeUpdateTransactionInfo{
		Transaction: &pb.Transaction{
			Signatures: [][]byte{make([]byte, 64)},
			Message: &pb.Message{
				Header:      &pb.MessageHeader{NumRequiredSignatures: 1},
				AccountKeys: keys,
				Instructions: []*pb.CompiledInstruction{
					{ProgramIdIndex: 19, Accounts: seq(solfiv2.SwapAccountsCount), Data: solfi[:]},
					// 账户数不符，应计为未识别
					{ProgramIdIndex: 20, Accounts: seq(5), Data: v4[:]},
				},
			},
		},
		Meta: &pb.TransactionStatusMeta{
			InnerInstructions: []*pb.InnerInstructions{{
				Index: 1,
				Instructions: []*pb.InnerInstruction{
					{ProgramIdIndex: 20, Accounts: seq(raydiumv4.SwapAccountsCount), Data: v4[:]},
					{ProgramIdIndex: 21, Accounts: seq(3), Data: []byte{3}},
				},
			}},
		},
	}
}

func TestFlattenInstructions(t *testing.T) {
	ixs, err := FlattenInstructions(buildTx(t))
	require.NoError(t, err)
	require.Len(t, ixs, 4)
	assert.Equal(t, consts.SolFiV2Program, ixs[0].ProgramID)
	assert.Equal(t, uint16(1), ixs[2].IxIndex)
	assert.Equal(t, uint16(1), ixs[2].InnerIndex)
	assert.Equal(t, uint16(2), ixs[3].InnerIndex)
	assert.Equal(t, consts.TokenProgram, ixs[3].ProgramID)
	assert.Equal(t, key(1), ixs[0].Accounts[0])
}

func TestFlattenInvalid(t *testing.T) {
	tx := buildTx(t)
	tx.Meta.Err = &pb.TransactionError{Err: []byte{1}}
	_, err := FlattenInstructions(tx)
	assert.Error(t, err)

	tx = buildTx(t)
	tx.Transaction.Message.Instructions[0].ProgramIdIndex = 99
	_, err = FlattenInstructions(tx)
	assert.ErrorContains(t, err, "out of range")

	_, err = FlattenInstructions(nil)
	assert.Error(t, err)
}

func TestClassifyTx(t *testing.T) {
	c := NewClassifier(protocols.Registry())
	obs, misses, err := c.ClassifyTx(42, buildTx(t))
	require.NoError(t, err)
	assert.Equal(t, 1, misses)
	require.Len(t, obs, 2)

	assert.Equal(t, consts.DexSolFiV2, obs[0].Dex)
	assert.Equal(t, "SolFiV2", obs[0].Protocol)
	assert.Equal(t, "swap", obs[0].Variant)
	assert.Equal(t, uint64(42), obs[0].Slot)
	assert.Equal(t, "1111111111111111111111111111111111111111111111111111111111111111", obs[0].Signature)

	assert.Equal(t, "swap_base_in", obs[1].Variant)
	assert.Equal(t, uint16(1), obs[1].InnerIndex)
}

func TestHandleUpdate(t *testing.T) {
	sink := NewLogSink()
	accounts := cache.NewAccountCache()
	m := &StreamManager{
		classifier: NewClassifier(protocols.Registry()),
		sink:       sink,
		accounts:   accounts,
	}

	m.handleUpdate(&pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_Transaction{
		Transaction: &pb.SubscribeUpdateTransaction{Slot: 7, Transaction: buildTx(t)},
	}})
	assert.Equal(t, map[string]int{"SolFiV2/swap": 1, "RaydiumV4/swap_base_in": 1}, sink.Counts())

	m.handleUpdate(&pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_Account{
		Account: &pb.SubscribeUpdateAccount{
			Slot:    9,
			Account: &pb.SubscribeUpdateAccountInfo{Pubkey: key(5).Bytes(), Data: []byte{1, 2}},
		},
	}})
	snap, ok := accounts.Get(key(5))
	require.True(t, ok)
	assert.Equal(t, uint64(9), snap.Slot)
	assert.Equal(t, []byte{1, 2}, snap.Data)
}

func TestBuildSubscribeRequest(t *testing.T) {
	req := buildSubscribeRequest([]string{consts.SolFiV2ProgramStr}, nil)
	f := req.Transactions["cpi_programs"]
	require.NotNil(t, f)
	assert.False(t, *f.Vote)
	assert.False(t, *f.Failed)
	assert.Equal(t, []string{consts.SolFiV2ProgramStr}, f.AccountInclude)
	assert.Nil(t, req.Accounts)
	assert.Equal(t, pb.CommitmentLevel_CONFIRMED, *req.Commitment)

	req = buildSubscribeRequest(nil, []string{"pool"})
	assert.Equal(t, []string{"pool"}, req.Accounts["pools"].Account)
}
