package raydiumclmm

import (
	"context"
	"encoding/hex"
	"testing"

	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
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
		Payer:            key(1),
		AmmConfig:        key(2),
		PoolState:        key(3),
		ObservationState: key(4),
		TickArray:        key(5),
		ExtraTickArrays:  []types.Pubkey{key(6), key(7)},
	}
	a.Orient(cpi.BaseToQuote,
		TokenSide{UserAccount: key(10), Vault: key(11)},
		TokenSide{UserAccount: key(20), Vault: key(21)},
	)
	return a
}

func TestSqrtPriceBounds(t *testing.T) {
	assert.Equal(t, "4295048016", MinSqrtPriceX64.String())
	assert.Equal(t, "79226673521066979257578248091", MaxSqrtPriceX64.String())
}

func TestArgsBytes(t *testing.T) {
	args := SwapArgs{
		Amount:               1_000_000,
		OtherAmountThreshold: 0,
		SqrtPriceLimitX64:    MinSqrtPriceX64,
		IsBaseInput:          true,
	}
	data, err := args.Bytes()
	require.NoError(t, err)
	require.Len(t, data, SwapDataSize)
	assert.Equal(t, "f8c69e91e17587c8", hex.EncodeToString(data[:8]))
	assert.Equal(t, "503b0100010000000000000000000000", hex.EncodeToString(data[24:40]))
	assert.Equal(t, byte(1), data[40])

	got, ok := DecodeSwapArgs(data)
	require.True(t, ok)
	assert.Equal(t, args, got)

	_, ok = DecodeSwapArgs(data[:40])
	assert.False(t, ok)
}

func TestSwapSchema(t *testing.T) {
	metas, err := swapAccounts().Metas()
	require.NoError(t, err)
	require.Len(t, metas, SwapAccountsCount+2)

	assert.Equal(t, cpi.ReadonlySigner, metas[0].Capability())
	assert.Equal(t, cpi.Readonly, metas[1].Capability())
	assert.Equal(t, cpi.Readonly, metas[8].Capability())
	assert.Equal(t, consts.TokenProgram, metas[8].PubKey)
	for _, i := range []int{2, 3, 4, 5, 6, 7, 9, 10, 11} {
		assert.Equal(t, cpi.Writable, metas[i].Capability(), "slot %d", i)
	}
	assert.Equal(t, key(10), metas[3].PubKey)
	assert.Equal(t, key(21), metas[6].PubKey)
	assert.Equal(t, key(7), metas[11].PubKey)
}

func TestInvoke(t *testing.T) {
	var got cpi.Instruction
	inv := cpi.InvokerFunc(func(_ context.Context, ix cpi.Instruction, _ []cpi.Signer) error {
		got = ix
		return nil
	})
	args := SwapArgs{Amount: 10, SqrtPriceLimitX64: uint128.Zero, IsBaseInput: true}
	require.NoError(t, InvokeSwap(context.Background(), inv, swapAccounts(), args))
	assert.Equal(t, consts.RaydiumCLMMProgram, got.ProgramID)
	assert.Len(t, got.Accounts, 12)

	var raw [SwapDataSize]byte
	copy(raw[:], got.Data)
	require.NoError(t, InvokeSwapRaw(context.Background(), inv, swapAccounts(), raw))
	assert.Equal(t, raw[:], got.Data)
}

func TestProgramIdentify(t *testing.T) {
	assert.True(t, IsProgram(consts.RaydiumCLMMProgram))
	data, err := SwapArgs{}.Bytes()
	require.NoError(t, err)

	_, ok := Program.Identify(data, SwapAccountsCount+3)
	assert.True(t, ok)
	_, ok = Program.Identify(data, SwapAccountsCount-1)
	assert.False(t, ok)
}
