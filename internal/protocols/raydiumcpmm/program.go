package raydiumcpmm

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

const (
	SwapBaseInput  uint64 = 0x8fbe5adac41e33de
	SwapBaseOutput uint64 = 0x37d96256a34ab4ad

	SwapDataSize      = 24 // disc + u64 + u64
	SwapAccountsCount = 13
)

var (
	swapBaseInputDisc  = codec.DiscriminatorFromUint64(SwapBaseInput)
	swapBaseOutputDisc = codec.DiscriminatorFromUint64(SwapBaseOutput)
)

var Program = cpi.NewProgram(consts.DexRaydiumCPMM, consts.RaydiumCPMMProgram, VariantSwapBaseInput, VariantSwapBaseOutput)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.RaydiumCPMMProgram
}
