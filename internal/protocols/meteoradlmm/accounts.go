package meteoradlmm

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// Meteora DLMM swap / swap_exact_out 账户布局：
//
//	0.  `[writable]` Lb Pair
//	1.  `[]`         Bin Array Bitmap Extension（可选，缺省为 DLMM Program）
//	2.  `[writable]` Reserve X
//	3.  `[writable]` Reserve Y
//	4.  `[writable]` User Token In
//	5.  `[writable]` User Token Out
//	6.  `[]`         Token X Mint
//	7.  `[]`         Token Y Mint
//	8.  `[writable]` Oracle
//	9.  `[writable]` Host Fee In（可选，缺省为 DLMM Program）
//	10. `[signer]`   User
//	11. `[]`         Token X Program
//	12. `[]`         Token Y Program
//	13. `[]`         Event Authority
//	14. `[]`         Program
//
// 其后追加 bin array（writable）。
func newSwapSchema(name string) *cpi.Schema {
	return cpi.NewSchema(name, consts.MeteoraDLMMProgram,
		cpi.Role("lb_pair", cpi.Writable),
		cpi.OptionalRole("bin_array_bitmap_extension", cpi.Readonly),
		cpi.Role("reserve_x", cpi.Writable),
		cpi.Role("reserve_y", cpi.Writable),
		cpi.Role("user_token_in", cpi.Writable),
		cpi.Role("user_token_out", cpi.Writable),
		cpi.Role("token_x_mint", cpi.Readonly),
		cpi.Role("token_y_mint", cpi.Readonly),
		cpi.Role("oracle", cpi.Writable),
		cpi.OptionalRole("host_fee_in", cpi.Writable),
		cpi.Role("user", cpi.ReadonlySigner),
		cpi.FixedRole("token_x_program", cpi.Readonly, consts.TokenProgram),
		cpi.FixedRole("token_y_program", cpi.Readonly, consts.TokenProgram),
		cpi.FixedRole("event_authority", cpi.Readonly, consts.MeteoraDLMMEventAuthority),
		cpi.FixedRole("program", cpi.Readonly, consts.MeteoraDLMMProgram),
	).WithRemaining(cpi.Writable)
}

var (
	swapSchema         = newSwapSchema("meteoradlmm_swap")
	swapExactOutSchema = newSwapSchema("meteoradlmm_swap_exact_out")

	VariantSwap = cpi.Variant{
		Name:     "swap",
		Schema:   swapSchema,
		DataSize: SwapDataSize,
		Match:    swapDisc.Matches,
	}
	VariantSwapExactOut = cpi.Variant{
		Name:     "swap_exact_out",
		Schema:   swapExactOutSchema,
		DataSize: SwapDataSize,
		Match:    swapExactOutDisc.Matches,
	}
)

type SwapAccounts struct {
	LbPair                  types.Pubkey
	BinArrayBitmapExtension types.Pubkey // 可为零值
	ReserveX                types.Pubkey
	ReserveY                types.Pubkey
	UserTokenIn             types.Pubkey
	UserTokenOut            types.Pubkey
	TokenXMint              types.Pubkey
	TokenYMint              types.Pubkey
	Oracle                  types.Pubkey
	HostFeeIn               types.Pubkey // 可为零值
	User                    types.Pubkey
	TokenXProgram           types.Pubkey
	TokenYProgram           types.Pubkey
	EventAuthority          types.Pubkey
	Program                 types.Pubkey

	BinArrays []types.Pubkey
}

// Orient 按方向放置用户的输入 / 输出账户，X 为 base，Y 为 quote。
// 程序根据 user_token_in 的 mint 判断 swap_for_y，指令数据中没有方向字段。
func (a *SwapAccounts) Orient(d cpi.Direction, userX, userY types.Pubkey) {
	if d == cpi.BaseToQuote {
		a.UserTokenIn, a.UserTokenOut = userX, userY
	} else {
		a.UserTokenIn, a.UserTokenOut = userY, userX
	}
}

func (a *SwapAccounts) addresses() []types.Pubkey {
	return []types.Pubkey{
		a.LbPair,
		a.BinArrayBitmapExtension,
		a.ReserveX,
		a.ReserveY,
		a.UserTokenIn,
		a.UserTokenOut,
		a.TokenXMint,
		a.TokenYMint,
		a.Oracle,
		a.HostFeeIn,
		a.User,
		a.TokenXProgram,
		a.TokenYProgram,
		a.EventAuthority,
		a.Program,
	}
}

func (a *SwapAccounts) Metas() ([]cpi.AccountMeta, error) {
	return swapSchema.Build(a.addresses(), a.BinArrays...)
}
