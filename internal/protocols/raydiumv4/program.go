package raydiumv4

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// 来源, https://github.com/raydium-io/raydium-amm/blob/master/program/src/instruction.rs
const (
	SwapBaseIn  uint8 = 9
	SwapBaseOut uint8 = 11

	SwapDataSize      = 17 // [tag u8][u64][u64]
	SwapAccountsCount = 18
)

var Program = cpi.NewProgram(consts.DexRaydiumV4, consts.RaydiumV4Program, VariantSwapBaseIn, VariantSwapBaseOut)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.RaydiumV4Program
}

// Orient 按方向放置用户 token 账户。coin = base，pc = quote。
// Raydium V4 指令数据中没有方向字段，方向完全由 source / destination 决定。
func Orient(d cpi.Direction, userBase, userQuote types.Pubkey) (source, destination types.Pubkey) {
	if d == cpi.BaseToQuote {
		return userBase, userQuote
	}
	return userQuote, userBase
}
