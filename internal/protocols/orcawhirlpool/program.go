package orcawhirlpool

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/layout"
	"dex-cpi-sol/internal/types"

	"lukechampine.com/uint128"
)

const (
	Swap uint64 = 0xf8c69e91e17587c8

	SwapDataSize      = 42
	SwapAccountsCount = 11
)

var swapDisc = codec.DiscriminatorFromUint64(Swap)

// sqrt price 上下限（Q64.64）
var (
	MinSqrtPrice = uint128.From64(4295048016)
	MaxSqrtPrice = uint128.New(0x35bb7f32a81b33af, 0xfffec4b1)
)

const WhirlpoolSize = 653

// WhirlpoolLayout Whirlpool 账户中构造 swap 所需的字段
var WhirlpoolLayout = layout.MustNew("orcawhirlpool_whirlpool", WhirlpoolSize, codec.Keyset{},
	layout.Field{Name: "whirlpools_config", Offset: 8, Width: 32},
	layout.Field{Name: "tick_spacing", Offset: 41, Width: 2},
	layout.Field{Name: "sqrt_price", Offset: 65, Width: 16},
	layout.Field{Name: "tick_current_index", Offset: 81, Width: 4},
	layout.Field{Name: "token_mint_a", Offset: 101, Width: 32},
	layout.Field{Name: "token_vault_a", Offset: 133, Width: 32},
	layout.Field{Name: "token_mint_b", Offset: 181, Width: 32},
	layout.Field{Name: "token_vault_b", Offset: 213, Width: 32},
)

var Program = cpi.NewProgram(consts.DexOrcaWhirlpool, consts.OrcaWhirlpoolProgram, VariantSwap)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.OrcaWhirlpoolProgram
}

type PoolAccounts struct {
	TokenMintA  types.Pubkey
	TokenVaultA types.Pubkey
	TokenMintB  types.Pubkey
	TokenVaultB types.Pubkey
}

func ParseWhirlpool(data []byte) (PoolAccounts, bool) {
	var p PoolAccounts
	if !WhirlpoolLayout.Available(data) {
		return p, false
	}
	p.TokenMintA, _ = WhirlpoolLayout.Pubkey(data, "token_mint_a")
	p.TokenVaultA, _ = WhirlpoolLayout.Pubkey(data, "token_vault_a")
	p.TokenMintB, _ = WhirlpoolLayout.Pubkey(data, "token_mint_b")
	p.TokenVaultB, _ = WhirlpoolLayout.Pubkey(data, "token_vault_b")
	return p, true
}

func ParseSqrtPrice(data []byte) (uint128.Uint128, bool) {
	b, ok := WhirlpoolLayout.Field(data, "sqrt_price")
	if !ok {
		return uint128.Zero, false
	}
	return uint128.FromBytes(b), true
}
