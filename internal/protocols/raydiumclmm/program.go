package raydiumclmm

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"

	"lukechampine.com/uint128"
)

const (
	Swap uint64 = 0xf8c69e91e17587c8

	SwapDataSize      = 41 // disc + u64 + u64 + u128 + bool
	SwapAccountsCount = 10 // 不含追加的 tick array
)

var swapDisc = codec.DiscriminatorFromUint64(Swap)

// 价格边界，sqrt_price_limit_x64 为 0 时由程序按方向取 MIN+1 / MAX-1
var (
	MinSqrtPriceX64 = uint128.From64(4295048016)
	MaxSqrtPriceX64 = uint128.New(0x845c1aa94e69579b, 0xfffec4b1) // 79226673521066979257578248091
)

var Program = cpi.NewProgram(consts.DexRaydiumCLMM, consts.RaydiumCLMMProgram, VariantSwap)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.RaydiumCLMMProgram
}
