package pumpfunamm

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/layout"
	"dex-cpi-sol/internal/types"
)

const (
	Buy  uint64 = 0x66063d1201daebea
	Sell uint64 = 0x33e685a4017f83ad

	SwapDataSize      = 24
	SwapAccountsCount = 19
)

var (
	buyDisc  = codec.DiscriminatorFromUint64(Buy)
	sellDisc = codec.DiscriminatorFromUint64(Sell)
)

const PoolMinSize = 243

// PoolLayout Pool 账户：bump(1) + index(2) + creator 之后依次为各 mint / vault
var PoolLayout = layout.MustNew("pumpfunamm_pool", PoolMinSize, codec.Keyset{},
	layout.Field{Name: "creator", Offset: 11, Width: 32},
	layout.Field{Name: "base_mint", Offset: 43, Width: 32},
	layout.Field{Name: "quote_mint", Offset: 75, Width: 32},
	layout.Field{Name: "lp_mint", Offset: 107, Width: 32},
	layout.Field{Name: "pool_base_token_account", Offset: 139, Width: 32},
	layout.Field{Name: "pool_quote_token_account", Offset: 171, Width: 32},
	layout.Field{Name: "lp_supply", Offset: 203, Width: 8},
	layout.Field{Name: "coin_creator", Offset: 211, Width: 32},
)

var Program = cpi.NewProgram(consts.DexPumpfunAMM, consts.PumpFunAMMProgram, VariantBuy, VariantSell)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.PumpFunAMMProgram
}

// PoolAccounts 从池子账户数据中读取构造 swap 账户所需的地址
type PoolAccounts struct {
	BaseMint         types.Pubkey
	QuoteMint        types.Pubkey
	PoolBaseAccount  types.Pubkey
	PoolQuoteAccount types.Pubkey
	CoinCreator      types.Pubkey
}

func ParsePool(data []byte) (PoolAccounts, bool) {
	var p PoolAccounts
	if !PoolLayout.Available(data) {
		return p, false
	}
	p.BaseMint, _ = PoolLayout.Pubkey(data, "base_mint")
	p.QuoteMint, _ = PoolLayout.Pubkey(data, "quote_mint")
	p.PoolBaseAccount, _ = PoolLayout.Pubkey(data, "pool_base_token_account")
	p.PoolQuoteAccount, _ = PoolLayout.Pubkey(data, "pool_quote_token_account")
	p.CoinCreator, _ = PoolLayout.Pubkey(data, "coin_creator")
	return p, true
}
