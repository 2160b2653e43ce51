package pumpfun

import (
	"context"
	"encoding/binary"
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
	return &SwapAccounts{
		FeeRecipient:           key(1),
		Mint:                   key(2),
		BondingCurve:           key(3),
		AssociatedBondingCurve: key(4),
		AssociatedUser:         key(5),
		User:                   key(6),
		CreatorVault:           key(7),
	}
}

func TestArgsBytes(t *testing.T) {
	data, err := BuyArgs{Amount: 1_000, MaxSolCost: 2_000}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "66063d1201daebea"+"e803000000000000"+"d007000000000000", hex.EncodeToString(data))

	buy, ok := DecodeBuyArgs(data)
	require.True(t, ok)
	assert.Equal(t, BuyArgs{Amount: 1_000, MaxSolCost: 2_000}, buy)
	_, ok = DecodeSellArgs(data)
	assert.False(t, ok)

	data, err = SellArgs{Amount: 5, MinSolOutput: 1}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "33e685a4017f83ad", hex.EncodeToString(data[:8]))
	sell, ok := DecodeSellArgs(data)
	require.True(t, ok)
	assert.Equal(t, uint64(5), sell.Amount)
}

func TestBuySellSchemas(t *testing.T) {
	a := swapAccounts()

	buy, err := a.BuyMetas()
	require.NoError(t, err)
	require.Len(t, buy, SwapAccountsCount)
	assert.Equal(t, consts.PumpFunGlobal, buy[0].PubKey)
	assert.Equal(t, cpi.WritableSigner, buy[6].Capability())
	assert.Equal(t, consts.TokenProgram, buy[8].PubKey)
	assert.Equal(t, key(7), buy[9].PubKey)
	assert.Equal(t, cpi.Writable, buy[9].Capability())
	assert.Equal(t, consts.PumpFunEventAuthority, buy[10].PubKey)
	assert.Equal(t, consts.PumpFunProgram, buy[11].PubKey)

	sell, err := a.SellMetas()
	require.NoError(t, err)
	require.Len(t, sell, SwapAccountsCount)
	assert.Equal(t, key(7), sell[8].PubKey)
	assert.Equal(t, cpi.Writable, sell[8].Capability())
	assert.Equal(t, consts.TokenProgram, sell[9].PubKey)
	assert.Equal(t, cpi.Readonly, sell[9].Capability())
}

func TestMissingUser(t *testing.T) {
	a := swapAccounts()
	a.User = types.Pubkey{}
	_, err := a.BuyMetas()
	var se *cpi.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "user", se.Role)
	assert.ErrorIs(t, err, cpi.ErrSchemaArity)
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, "buy", VariantFor(cpi.QuoteToBase).Name)
	assert.Equal(t, "sell", VariantFor(cpi.BaseToQuote).Name)
}

func TestInvokeSwapRaw(t *testing.T) {
	var got cpi.Instruction
	inv := cpi.InvokerFunc(func(_ context.Context, ix cpi.Instruction, _ []cpi.Signer) error {
		got = ix
		return nil
	})

	data, err := SellArgs{Amount: 10, MinSolOutput: 0}.Bytes()
	require.NoError(t, err)
	var raw [SwapDataSize]byte
	copy(raw[:], data)
	require.NoError(t, InvokeSwapRaw(context.Background(), inv, swapAccounts(), raw))
	assert.Equal(t, consts.PumpFunProgram, got.ProgramID)
	assert.Equal(t, key(7), got.Accounts[8].PubKey)

	raw[0] ^= 0xff
	assert.ErrorIs(t, InvokeSwapRaw(context.Background(), inv, swapAccounts(), raw), cpi.ErrUnrecognizedVariant)
}

func TestIdentify(t *testing.T) {
	data, err := BuyArgs{Amount: 1}.Bytes()
	require.NoError(t, err)
	v, ok := Program.Identify(data, SwapAccountsCount)
	require.True(t, ok)
	assert.Equal(t, "buy", v.Name)

	_, ok = Program.Identify(data[:20], SwapAccountsCount)
	assert.False(t, ok)
}

func TestBondingCurve(t *testing.T) {
	buf := make([]byte, BondingCurveMinSize)
	binary.LittleEndian.PutUint64(buf[32:], 42)
	buf[48] = 1
	copy(buf[49:], key(9).Bytes())

	complete, ok := IsComplete(buf)
	require.True(t, ok)
	assert.True(t, complete)
	creator, ok := Creator(buf)
	require.True(t, ok)
	assert.Equal(t, key(9), creator)
	sol, ok := RealSolReserves(buf)
	require.True(t, ok)
	assert.Equal(t, uint64(42), sol)

	_, ok = Creator(buf[:BondingCurveMinSize-1])
	assert.False(t, ok)
}
