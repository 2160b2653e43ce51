package pumpfun

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
	SwapAccountsCount = 12
)

var (
	buyDisc  = codec.DiscriminatorFromUint64(Buy)
	sellDisc = codec.DiscriminatorFromUint64(Sell)
)

// BondingCurve 账户布局（Anchor 账户，前 8 字节为账户 discriminator）
const (
	BondingCurveMinSize = 81
)

var BondingCurveLayout = layout.MustNew("pumpfun_bonding_curve", BondingCurveMinSize, codec.Keyset{},
	layout.Field{Name: "virtual_token_reserves", Offset: 8, Width: 8},
	layout.Field{Name: "virtual_sol_reserves", Offset: 16, Width: 8},
	layout.Field{Name: "real_token_reserves", Offset: 24, Width: 8},
	layout.Field{Name: "real_sol_reserves", Offset: 32, Width: 8},
	layout.Field{Name: "token_total_supply", Offset: 40, Width: 8},
	layout.Field{Name: "complete", Offset: 48, Width: 1},
	layout.Field{Name: "creator", Offset: 49, Width: 32},
)

var Program = cpi.NewProgram(consts.DexPumpfun, consts.PumpFunProgram, VariantBuy, VariantSell)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.PumpFunProgram
}

// IsComplete 曲线已完成（已迁移）后不再接受 buy / sell
func IsComplete(curve []byte) (bool, bool) {
	v, ok := BondingCurveLayout.Uint8(curve, "complete")
	return v == 1, ok
}

// Creator creator_vault 由该地址派生
func Creator(curve []byte) (types.Pubkey, bool) {
	return BondingCurveLayout.Pubkey(curve, "creator")
}

func RealSolReserves(curve []byte) (uint64, bool) {
	return BondingCurveLayout.Uint64(curve, "real_sol_reserves")
}
