package layout

import "dex-cpi-sol/internal/codec"

// SPL Token Account 布局:
//
//	[0..32]  mint
//	[32..64] owner
//	[64..72] amount (u64)
const TokenAccountMinSize = 72

var TokenAccount = MustNew("spl_token_account", TokenAccountMinSize, codec.Keyset{},
	Field{Name: "mint", Offset: 0, Width: 32},
	Field{Name: "owner", Offset: 32, Width: 32},
	Field{Name: "amount", Offset: 64, Width: 8},
)

// TokenAccountBalance 读取 token 账户余额，长度不足时返回 false
func TokenAccountBalance(buf []byte) (uint64, bool) {
	return TokenAccount.Uint64(buf, "amount")
}
