package solfiv2

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/layout"
	"dex-cpi-sol/internal/types"
)

// SolFi V2 为非 Anchor 程序，指令 ID 为单字节
const (
	SwapInstructionID uint8 = 0x07
	SwapDataSize            = 25
	SwapAccountsCount       = 13
)

// 链上错误码，仅供宿主解释
const (
	ErrorStaleData     uint32 = 0x17 // 账户数据过期（slot 过旧）
	ErrorOracleExpired uint32 = 23   // 预言机过期（slot 延迟超过阈值）
)

// 市场类型（market_state 首字节）
const (
	MarketTypeFF uint8 = 0xFF // PUMP、WSOL、ZEC、USD1 等
	MarketTypeFE uint8 = 0xFE // MON、zenZEC
	MarketTypeFD uint8 = 0xFD // HYPE
	MarketTypeFC uint8 = 0xFC // USDT
)

var MarketTypes = layout.NewTagSet(MarketTypeFF, MarketTypeFE, MarketTypeFD, MarketTypeFC)

// 已知活跃池子
var (
	PoolPumpUSDC   = types.PubkeyFromBase58("2kfQuYG2FVZL2RqqKEttcdadbPWP4c7b6AFQztNcBWyV")
	PoolWSOLUSDC   = types.PubkeyFromBase58("65ZHSArs5XxPseKQbB1B4r16vDxMWnCxHMzogDAqiDUc")
	PoolUSDTUSDC   = types.PubkeyFromBase58("FkEB6uvyzuoaGpgs4yRtFtxC4WJxhejNFbUkj5R6wR32")
	PoolZECUSDC    = types.PubkeyFromBase58("BjBHvbqgQCRmvZ6u3VzGrHn3QZ1NfmMRujoqjeaK6fLT")
	PoolMONUSDC    = types.PubkeyFromBase58("2Q6S8p9iZNzMvpTemiC56HqCJ3F3szNoyRkvqEKfCanY")
	PoolHYPEUSDC   = types.PubkeyFromBase58("2e25gRiddjn968aXrLt1oZw3BZ4fYD5D8mCv7uKxu1yL")
	PoolZenZECUSDC = types.PubkeyFromBase58("7TKsqWxU9QkPYVLdjjR1V67ky3FnYogjntUpNLexib4E")
)

// Market State 布局（部分字段），账户实际大小 1728 字节
const (
	MarketTypeOffset = 0
	BaseMintOffset   = 8
	QuoteMintOffset  = 40
	BaseVaultOffset  = 72
	QuoteVaultOffset = 104
	FeeRateOffset    = 136
	MarketStateSize  = 1728
	MarketMinSize    = 200
)

var MarketLayout = layout.MustNew("solfi_v2_market", MarketMinSize, codec.Keyset{},
	layout.Field{Name: "market_type", Offset: MarketTypeOffset, Width: 1},
	layout.Field{Name: "base_mint", Offset: BaseMintOffset, Width: 32},
	layout.Field{Name: "quote_mint", Offset: QuoteMintOffset, Width: 32},
	layout.Field{Name: "base_vault", Offset: BaseVaultOffset, Width: 32},
	layout.Field{Name: "quote_vault", Offset: QuoteVaultOffset, Width: 32},
	layout.Field{Name: "fee_rate", Offset: FeeRateOffset, Width: 8},
)

var Program = cpi.NewProgram(consts.DexSolFiV2, consts.SolFiV2Program, VariantSwap)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.SolFiV2Program
}

func ParseMarketType(market []byte) (uint8, bool) {
	return MarketLayout.Uint8(market, "market_type")
}

// IsKnownMarketType 未知类型返回 false，新类型可能在客户端更新前上线
func IsKnownMarketType(tag uint8) bool {
	return MarketTypes.Known(tag)
}

func ParseBaseMint(market []byte) (types.Pubkey, bool) {
	return MarketLayout.Pubkey(market, "base_mint")
}

func ParseQuoteMint(market []byte) (types.Pubkey, bool) {
	return MarketLayout.Pubkey(market, "quote_mint")
}

func ParseBaseVault(market []byte) (types.Pubkey, bool) {
	return MarketLayout.Pubkey(market, "base_vault")
}

func ParseQuoteVault(market []byte) (types.Pubkey, bool) {
	return MarketLayout.Pubkey(market, "quote_vault")
}

func ParseFeeRate(market []byte) (uint64, bool) {
	return MarketLayout.Uint64(market, "fee_rate")
}

// PoolReserves 从两个 vault token 账户读取储备量
func PoolReserves(baseVault, quoteVault []byte) (base, quote uint64, ok bool) {
	if base, ok = layout.TokenAccountBalance(baseVault); !ok {
		return 0, 0, false
	}
	if quote, ok = layout.TokenAccountBalance(quoteVault); !ok {
		return 0, 0, false
	}
	return base, quote, true
}
