package meteoradlmm

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

const (
	Swap         uint64 = 0xf8c69e91e17587c8
	SwapExactOut uint64 = 0xfa49652126cf4bb8

	SwapDataSize      = 24
	SwapAccountsCount = 15
)

var (
	swapDisc         = codec.DiscriminatorFromUint64(Swap)
	swapExactOutDisc = codec.DiscriminatorFromUint64(SwapExactOut)
)

var Program = cpi.NewProgram(consts.DexMeteoraDLMM, consts.MeteoraDLMMProgram, VariantSwap, VariantSwapExactOut)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.MeteoraDLMMProgram
}
