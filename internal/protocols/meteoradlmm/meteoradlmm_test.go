package meteoradlmm

import (
	"context"
	"encoding/hex"
	"testing"

	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"

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

func swapAccounts() *SwapAccounts {
	a := &SwapAccounts{
		LbPair:     key(1),
		ReserveX:   key(2),
		ReserveY:   key(3),
		TokenXMint: key(4),
		TokenYMint: consts.WSOLMint,
		Oracle:     key(5),
		User:       key(6),
		BinArrays:  []types.Pubkey{key(30), key(31)},
	}
	a.Orient(cpi.BaseToQuote, key(10), key(20))
	return a
}

func TestArgsBytes(t *testing.T) {
	data, err := SwapArgs{AmountIn: 1_000_000, MinAmountOut: 1}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "f8c69e91e17587c8"+"40420f0000000000"+"0100000000000000", hex.EncodeToString(data))
	got, ok := DecodeSwapArgs(data)
	require.True(t, ok)
	assert.Equal(t, SwapArgs{AmountIn: 1_000_000, MinAmountOut: 1}, got)

	data, err = SwapExactOutArgs{MaxInAmount: 9, OutAmount: 8}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "fa49652126cf4bb8", hex.EncodeToString(data[:8]))
	_, ok = DecodeSwapArgs(data)
	assert.False(t, ok)
	out, ok := DecodeSwapExactOutArgs(data)
	require.True(t, ok)
	assert.Equal(t, uint64(8), out.OutAmount)
}

func TestSwapSchema(t *testing.T) {
	metas, err := swapAccounts().Metas()
	require.NoError(t, err)
	require.Len(t, metas, SwapAccountsCount+2)

	// 可选账户缺省为 program 自身且只读
	assert.Equal(t, consts.MeteoraDLMMProgram, metas[1].PubKey)
	assert.Equal(t, cpi.Readonly, metas[1].Capability())
	assert.Equal(t, consts.MeteoraDLMMProgram, metas[9].PubKey)
	assert.Equal(t, cpi.Readonly, metas[9].Capability())

	assert.Equal(t, key(10), metas[4].PubKey)
	assert.Equal(t, key(20), metas[5].PubKey)
	assert.Equal(t, cpi.ReadonlySigner, metas[10].Capability())
	assert.Equal(t, consts.MeteoraDLMMEventAuthority, metas[13].PubKey)
	assert.Equal(t, consts.MeteoraDLMMProgram, metas[14].PubKey)
	assert.Equal(t, key(30), metas[15].PubKey)
	assert.Equal(t, cpi.Writable, metas[16].Capability())
}

func TestOptionalProvided(t *testing.T) {
	a := swapAccounts()
	a.HostFeeIn = key(40)
	metas, err := a.Metas()
	require.NoError(t, err)
	assert.Equal(t, key(40), metas[9].PubKey)
	assert.Equal(t, cpi.Writable, metas[9].Capability())
}

func TestOrient(t *testing.T) {
	var a SwapAccounts
	a.Orient(cpi.QuoteToBase, key(10), key(20))
	assert.Equal(t, key(20), a.UserTokenIn)
	assert.Equal(t, key(10), a.UserTokenOut)
}

func TestInvokeSwapRaw(t *testing.T) {
	var got cpi.Instruction
	inv := cpi.InvokerFunc(func(_ context.Context, ix cpi.Instruction, _ []cpi.Signer) error {
		got = ix
		return nil
	})

	data, err := SwapExactOutArgs{MaxInAmount: 100, OutAmount: 50}.Bytes()
	require.NoError(t, err)
	var raw [SwapDataSize]byte
	copy(raw[:], data)
	require.NoError(t, InvokeSwapRaw(context.Background(), inv, swapAccounts(), raw))
	assert.Equal(t, consts.MeteoraDLMMProgram, got.ProgramID)
	assert.Len(t, got.Accounts, SwapAccountsCount+2)

	v, ok := Program.Identify(got.Data, len(got.Accounts))
	require.True(t, ok)
	assert.Equal(t, "swap_exact_out", v.Name)

	_, ok = Program.Identify(got.Data, SwapAccountsCount-1)
	assert.False(t, ok)
}
