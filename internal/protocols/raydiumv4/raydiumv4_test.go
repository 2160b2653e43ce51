package raydiumv4

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
	src, dst := Orient(cpi.QuoteToBase, key(20), key(21))
	return &SwapAccounts{
		Amm:               key(1),
		AmmOpenOrders:     key(3),
		AmmTargetOrders:   key(4),
		PoolCoinVault:     key(5),
		PoolPcVault:       key(6),
		MarketProgram:     key(7),
		Market:            key(8),
		MarketBids:        key(9),
		MarketAsks:        key(10),
		MarketEventQueue:  key(11),
		MarketCoinVault:   key(12),
		MarketPcVault:     key(13),
		MarketVaultSigner: key(14),
		UserSource:        src,
		UserDestination:   dst,
		UserOwner:         key(30),
	}
}

func TestArgsBytes(t *testing.T) {
	in := SwapBaseInArgs{AmountIn: 1_000_000, MinimumAmountOut: 1}.Bytes()
	assert.Equal(t, "09"+"40420f0000000000"+"0100000000000000", hex.EncodeToString(in[:]))

	out := SwapBaseOutArgs{MaxAmountIn: 2, AmountOut: 3}.Bytes()
	assert.Equal(t, "0b"+"0200000000000000"+"0300000000000000", hex.EncodeToString(out[:]))

	a, ok := DecodeSwapBaseIn(in[:])
	require.True(t, ok)
	assert.Equal(t, uint64(1_000_000), a.AmountIn)
	_, ok = DecodeSwapBaseIn(out[:])
	assert.False(t, ok)

	b, ok := DecodeSwapBaseOut(out[:])
	require.True(t, ok)
	assert.Equal(t, SwapBaseOutArgs{MaxAmountIn: 2, AmountOut: 3}, b)
}

func TestOrient(t *testing.T) {
	src, dst := Orient(cpi.BaseToQuote, key(1), key(2))
	assert.Equal(t, key(1), src)
	assert.Equal(t, key(2), dst)

	src, dst = Orient(cpi.QuoteToBase, key(1), key(2))
	assert.Equal(t, key(2), src)
	assert.Equal(t, key(1), dst)
}

func TestSwapSchema(t *testing.T) {
	metas, err := swapAccounts().Metas()
	require.NoError(t, err)
	require.Len(t, metas, SwapAccountsCount)

	readonly := map[int]bool{0: true, 2: true, 7: true, 14: true}
	for i, m := range metas {
		switch {
		case i == 17:
			assert.Equal(t, cpi.ReadonlySigner, m.Capability())
		case readonly[i]:
			assert.Equal(t, cpi.Readonly, m.Capability(), "slot %d", i)
		default:
			assert.Equal(t, cpi.Writable, m.Capability(), "slot %d", i)
		}
	}
	assert.Equal(t, consts.TokenProgram, metas[0].PubKey)
	assert.Equal(t, consts.RaydiumV4Authority, metas[2].PubKey)
	assert.Equal(t, key(21), metas[15].PubKey)
	assert.Equal(t, key(20), metas[16].PubKey)
}

func TestInvoke(t *testing.T) {
	var got []cpi.Instruction
	inv := cpi.InvokerFunc(func(_ context.Context, ix cpi.Instruction, _ []cpi.Signer) error {
		got = append(got, ix)
		return nil
	})
	ctx := context.Background()

	require.NoError(t, InvokeSwapBaseIn(ctx, inv, swapAccounts(), SwapBaseInArgs{AmountIn: 1}))
	require.NoError(t, InvokeSwapBaseOut(ctx, inv, swapAccounts(), SwapBaseOutArgs{AmountOut: 1}))
	require.NoError(t, InvokeSwapRaw(ctx, inv, swapAccounts(), SwapBaseOutArgs{AmountOut: 1}.Bytes()))
	require.Len(t, got, 3)

	assert.Equal(t, SwapBaseIn, got[0].Data[0])
	assert.Equal(t, SwapBaseOut, got[1].Data[0])
	assert.Equal(t, got[1], got[2])
	for _, ix := range got {
		assert.Equal(t, consts.RaydiumV4Program, ix.ProgramID)
	}
}

func TestInvokeSwapRawUnknownTag(t *testing.T) {
	called := false
	inv := cpi.InvokerFunc(func(context.Context, cpi.Instruction, []cpi.Signer) error {
		called = true
		return nil
	})
	for _, tag := range []uint8{0, 10, 12, 0xff} {
		raw := SwapBaseInArgs{AmountIn: 1}.Bytes()
		raw[0] = tag
		err := InvokeSwapRaw(context.Background(), inv, swapAccounts(), raw)
		assert.ErrorIs(t, err, cpi.ErrUnrecognizedVariant, "tag %d", tag)
	}
	assert.False(t, called)
}

func TestProgramIdentify(t *testing.T) {
	assert.True(t, IsProgram(consts.RaydiumV4Program))

	data := SwapBaseOutArgs{}.Bytes()
	v, ok := Program.Identify(data[:], SwapAccountsCount)
	require.True(t, ok)
	assert.Equal(t, "swap_base_out", v.Name)

	_, ok = Program.Identify(data[:], SwapAccountsCount-1)
	assert.False(t, ok)
}
