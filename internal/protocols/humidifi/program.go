package humidifi

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/layout"
	"dex-cpi-sol/internal/types"
)

// HumidiFi 为非 Anchor 的私有做市程序，池子数据与指令数据均经过 XOR 混淆，
// 账户与数据格式均来自链上交易逆向。token_a = quote，token_b = base。
const (
	SwapDataSize        = 25
	SwapV1AccountsCount = 9
	SwapV2AccountsCount = 13
)

// Keys 池子数据与指令数据共用的混淆密钥，32 字节地址按 4 个 8 字节小端分块逐一异或
var Keys = codec.NewKeyset(
	0xfb5ce87aae443c38,
	0x04a2178451bac3c7,
	0x04a1178751b9c3c6,
	0x04a0178651b8c3c5,
)

// 池子账户布局（全部字段经 XOR 混淆）
const (
	PoolQuoteMintOffset    = 384
	PoolBaseMintOffset     = 416
	PoolAccountOffset      = 448
	PoolTokenAccountOffset = 480
	PoolMinSize            = 512
)

var PoolLayout = layout.MustNew("humidifi_pool", PoolMinSize, Keys,
	layout.Field{Name: "quote_mint", Offset: PoolQuoteMintOffset, Width: 32, Obfuscated: true},
	layout.Field{Name: "base_mint", Offset: PoolBaseMintOffset, Width: 32, Obfuscated: true},
	layout.Field{Name: "pool_account", Offset: PoolAccountOffset, Width: 32, Obfuscated: true},
	layout.Field{Name: "token_account", Offset: PoolTokenAccountOffset, Width: 32, Obfuscated: true},
)

var Program = cpi.NewProgram(consts.DexHumidiFi, consts.HumidiFiProgram, VariantSwapV1, VariantSwapV2)

func IsProgram(addr types.Pubkey) bool {
	return addr == consts.HumidiFiProgram
}

func ParseQuoteMint(pool []byte) (types.Pubkey, bool) {
	return PoolLayout.Pubkey(pool, "quote_mint")
}

func ParseBaseMint(pool []byte) (types.Pubkey, bool) {
	return PoolLayout.Pubkey(pool, "base_mint")
}

func ParsePoolAccount(pool []byte) (types.Pubkey, bool) {
	return PoolLayout.Pubkey(pool, "pool_account")
}

func ParseTokenAccount(pool []byte) (types.Pubkey, bool) {
	return PoolLayout.Pubkey(pool, "token_account")
}

// XorPubkey 编码与解码相同
func XorPubkey(p types.Pubkey) types.Pubkey {
	out, _ := Keys.Pubkey(p) // 宽度固定为 32，不会出错
	return out
}

// XorU64 对单个 u64 做混淆，keyIndex 按 4 取模
func XorU64(v uint64, keyIndex int) uint64 {
	return Keys.Scalar(v, keyIndex)
}
