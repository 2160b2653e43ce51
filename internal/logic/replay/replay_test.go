package replay

import (
	"context"
	"errors"
	"testing"

	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/invoker"
	"dex-cpi-sol/internal/protocols/raydiumclmm"
	"dex-cpi-sol/internal/protocols/raydiumv4"
	"dex-cpi-sol/internal/types"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(b byte) types.Pubkey {
	var p types.Pubkey
	p[0] = b
	p[31] = 0x5a
	return p
}

func addresses(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = key(byte(i + 1)).String()
	}
	return out
}

func v4Capture(nAccounts int) config.Capture {
	data := raydiumv4.SwapBaseInArgs{AmountIn: 1_000, MinimumAmountOut: 900}.Bytes()
	return config.Capture{
		Name:     "v4",
		Dex:      consts.DexName(consts.DexRaydiumV4),
		Variant:  "swap_base_in",
		Accounts: addresses(nAccounts),
		Data:     base58.Encode(data[:]),
	}
}

func TestBuildFixedSchema(t *testing.T) {
	ix, err := Build(v4Capture(raydiumv4.SwapAccountsCount))
	require.NoError(t, err)
	assert.Equal(t, consts.RaydiumV4Program, ix.ProgramID)
	assert.Len(t, ix.Accounts, raydiumv4.SwapAccountsCount)

	args, ok := raydiumv4.DecodeSwapBaseIn(ix.Data)
	require.True(t, ok)
	assert.Equal(t, uint64(1_000), args.AmountIn)
}

func TestBuildArityMismatch(t *testing.T) {
	_, err := Build(v4Capture(raydiumv4.SwapAccountsCount - 1))
	assert.ErrorIs(t, err, cpi.ErrSchemaArity)

	// 不允许追加账户
	_, err = Build(v4Capture(raydiumv4.SwapAccountsCount + 1))
	assert.ErrorIs(t, err, cpi.ErrSchemaArity)
}

func TestBuildRemainingAccounts(t *testing.T) {
	data, err := raydiumclmm.SwapArgs{Amount: 5, IsBaseInput: true}.Bytes()
	require.NoError(t, err)
	c := config.Capture{
		Name:     "clmm",
		Dex:      consts.DexName(consts.DexRaydiumCLMM),
		Variant:  "swap",
		Accounts: addresses(raydiumclmm.SwapAccountsCount + 3),
		Data:     base58.Encode(data),
	}
	ix, err := Build(c)
	require.NoError(t, err)
	require.Len(t, ix.Accounts, raydiumclmm.SwapAccountsCount+3)
	assert.True(t, ix.Accounts[raydiumclmm.SwapAccountsCount].IsWritable)
}

func TestBuildUnknownTarget(t *testing.T) {
	c := v4Capture(raydiumv4.SwapAccountsCount)
	c.Dex = "Nope"
	_, err := Build(c)
	assert.ErrorIs(t, err, ErrUnknownCapture)

	c = v4Capture(raydiumv4.SwapAccountsCount)
	c.Variant = "route"
	_, err = Build(c)
	assert.ErrorIs(t, err, ErrUnknownCapture)
}

func TestBuildPayloadSize(t *testing.T) {
	c := v4Capture(raydiumv4.SwapAccountsCount)
	c.Data = base58.Encode([]byte{9, 1, 2})
	_, err := Build(c)
	assert.ErrorIs(t, err, cpi.ErrPayloadSize)
}

func TestRun(t *testing.T) {
	col := invoker.NewCollector()
	bad := v4Capture(3)
	bad.Name = "bad"

	results := Run(context.Background(), col, []config.Capture{v4Capture(raydiumv4.SwapAccountsCount), bad})
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, raydiumv4.SwapAccountsCount, results[0].Accounts)
	assert.Error(t, results[1].Err)
	assert.Equal(t, 1, col.Len())
}

func TestRunInvokerFailure(t *testing.T) {
	boom := errors.New("boom")
	inv := cpi.InvokerFunc(func(context.Context, cpi.Instruction, []cpi.Signer) error { return boom })

	results := Run(context.Background(), inv, []config.Capture{v4Capture(raydiumv4.SwapAccountsCount)})
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, boom)
	var ie *cpi.InvocationError
	assert.ErrorAs(t, results[0].Err, &ie)
}
