package protocols

import (
	"testing"

	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/protocols/humidifi"
	"dex-cpi-sol/internal/protocols/meteoradlmm"
	"dex-cpi-sol/internal/protocols/orcawhirlpool"
	"dex-cpi-sol/internal/protocols/pumpfun"
	"dex-cpi-sol/internal/protocols/pumpfunamm"
	"dex-cpi-sol/internal/protocols/raydiumclmm"
	"dex-cpi-sol/internal/protocols/raydiumcpmm"
	"dex-cpi-sol/internal/protocols/raydiumv4"
	"dex-cpi-sol/internal/protocols/solfiv2"
	"dex-cpi-sol/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBytes(t *testing.T, f func() ([]byte, error)) []byte {
	t.Helper()
	b, err := f()
	require.NoError(t, err)
	return b
}

func TestRegistryPrograms(t *testing.T) {
	ids := Registry().ProgramIDs()
	assert.Len(t, ids, 9)
	for _, id := range []types.Pubkey{
		consts.HumidiFiProgram,
		consts.SolFiV2Program,
		consts.RaydiumV4Program,
		consts.RaydiumCPMMProgram,
		consts.RaydiumCLMMProgram,
		consts.PumpFunProgram,
		consts.PumpFunAMMProgram,
		consts.MeteoraDLMMProgram,
		consts.OrcaWhirlpoolProgram,
	} {
		assert.True(t, IsSupported(id), id.String())
	}
	assert.False(t, IsSupported(consts.TokenProgram))
}

func TestClassify(t *testing.T) {
	v1, err := humidifi.SwapArgs{SwapID: 1, Direction: cpi.QuoteToBase}.BytesV1()
	require.NoError(t, err)
	solfi, err := solfiv2.Sell(1_000_000, 0).Bytes()
	require.NoError(t, err)
	v4 := raydiumv4.SwapBaseInArgs{AmountIn: 1}.Bytes()

	tests := []struct {
		name      string
		program   types.Pubkey
		data      []byte
		nAccounts int
		dex       int
		variant   string
	}{
		{"humidifi v1", consts.HumidiFiProgram, v1[:], humidifi.SwapV1AccountsCount, consts.DexHumidiFi, "swap"},
		{"humidifi v2", consts.HumidiFiProgram, v1[:], humidifi.SwapV2AccountsCount, consts.DexHumidiFi, "swap_v2"},
		{"solfi", consts.SolFiV2Program, solfi[:], solfiv2.SwapAccountsCount, consts.DexSolFiV2, "swap"},
		{"raydium v4", consts.RaydiumV4Program, v4[:], raydiumv4.SwapAccountsCount, consts.DexRaydiumV4, "swap_base_in"},
		{"raydium cpmm", consts.RaydiumCPMMProgram,
			mustBytes(t, raydiumcpmm.SwapBaseOutputArgs{MaxAmountIn: 2, AmountOut: 1}.Bytes),
			raydiumcpmm.SwapAccountsCount, consts.DexRaydiumCPMM, "swap_base_output"},
		{"raydium clmm", consts.RaydiumCLMMProgram,
			mustBytes(t, raydiumclmm.SwapArgs{Amount: 1, IsBaseInput: true}.Bytes),
			raydiumclmm.SwapAccountsCount, consts.DexRaydiumCLMM, "swap"},
		{"pumpfun", consts.PumpFunProgram,
			mustBytes(t, pumpfun.SellArgs{Amount: 1}.Bytes),
			pumpfun.SwapAccountsCount, consts.DexPumpfun, "sell"},
		{"pumpswap", consts.PumpFunAMMProgram,
			mustBytes(t, pumpfunamm.BuyArgs{BaseAmountOut: 1}.Bytes),
			pumpfunamm.SwapAccountsCount, consts.DexPumpfunAMM, "buy"},
		{"dlmm", consts.MeteoraDLMMProgram,
			mustBytes(t, meteoradlmm.SwapArgs{AmountIn: 1}.Bytes),
			meteoradlmm.SwapAccountsCount, consts.DexMeteoraDLMM, "swap"},
		{"whirlpool", consts.OrcaWhirlpoolProgram,
			mustBytes(t, orcawhirlpool.NewSwapArgs(cpi.BaseToQuote, 1, 0, true).Bytes),
			orcawhirlpool.SwapAccountsCount, consts.DexOrcaWhirlpool, "swap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Classify(tt.program, tt.data, tt.nAccounts)
			require.NoError(t, err)
			assert.Equal(t, tt.dex, c.Program.Dex())
			assert.Equal(t, tt.variant, c.Variant.Name)

			// 少一个字节或少一个账户均不能识别
			_, err = Classify(tt.program, tt.data[:len(tt.data)-1], tt.nAccounts)
			assert.ErrorIs(t, err, cpi.ErrUnrecognizedVariant)
			_, err = Classify(tt.program, tt.data, tt.nAccounts-1)
			assert.ErrorIs(t, err, cpi.ErrUnrecognizedVariant)
		})
	}
}

func TestClassifyUnknownProgram(t *testing.T) {
	_, err := Classify(consts.TokenProgram, make([]byte, 24), 12)
	assert.ErrorIs(t, err, cpi.ErrUnrecognizedVariant)
}

func TestProgramByName(t *testing.T) {
	p, ok := ProgramByName("HumidiFi")
	require.True(t, ok)
	assert.Equal(t, consts.DexHumidiFi, p.Dex())

	_, ok = ProgramByName("humidifi")
	assert.False(t, ok)
}
