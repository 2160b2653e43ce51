package solfiv2

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// Swap 账户布局（13 个，来自链上交易逆向）:
//
//	0.  `[writable]` market_state
//	1.  `[]`         authority（vault 转账的 PDA）
//	2.  `[writable]` base_vault
//	3.  `[writable]` quote_vault
//	4.  `[writable]` 用户 base token 账户
//	5.  `[writable]` 用户 quote token 账户
//	6.  `[writable]` fee_receiver
//	7.  `[]`         referral（可与 fee_receiver 相同）
//	8.  `[]`         base_mint
//	9.  `[]`         quote_mint
//	10. `[]`         token_program
//	11. `[]`         token_program_2（混合 token 标准的池子）
//	12. `[]`         sysvar_instructions
var swapSchema = cpi.NewSchema("solfi_v2_swap", consts.SolFiV2Program,
	cpi.Role("market_state", cpi.Writable),
	cpi.Role("authority", cpi.Readonly),
	cpi.Role("base_vault", cpi.Writable),
	cpi.Role("quote_vault", cpi.Writable),
	cpi.Role("user_base_account", cpi.Writable),
	cpi.Role("user_quote_account", cpi.Writable),
	cpi.Role("fee_receiver", cpi.Writable),
	cpi.Role("referral_account", cpi.Readonly),
	cpi.Role("base_mint", cpi.Readonly),
	cpi.Role("quote_mint", cpi.Readonly),
	cpi.FixedRole("token_program", cpi.Readonly, consts.TokenProgram),
	cpi.FixedRole("token_program_2", cpi.Readonly, consts.TokenProgram),
	cpi.FixedRole("sysvar_instructions", cpi.Readonly, consts.InstructionsSysvar),
)

var VariantSwap = cpi.Variant{
	Name:     "swap",
	Schema:   swapSchema,
	DataSize: SwapDataSize,
	Match:    func(data []byte) bool { return data[0] == SwapInstructionID },
}

type SwapAccounts struct {
	MarketState        types.Pubkey
	Authority          types.Pubkey
	BaseVault          types.Pubkey
	QuoteVault         types.Pubkey
	UserBaseAccount    types.Pubkey
	UserQuoteAccount   types.Pubkey
	FeeReceiver        types.Pubkey
	ReferralAccount    types.Pubkey
	BaseMint           types.Pubkey
	QuoteMint          types.Pubkey
	TokenProgram       types.Pubkey
	TokenProgram2      types.Pubkey
	SysvarInstructions types.Pubkey
}

func (a *SwapAccounts) addresses() []types.Pubkey {
	return []types.Pubkey{
		a.MarketState,
		a.Authority,
		a.BaseVault,
		a.QuoteVault,
		a.UserBaseAccount,
		a.UserQuoteAccount,
		a.FeeReceiver,
		a.ReferralAccount,
		a.BaseMint,
		a.QuoteMint,
		a.TokenProgram,
		a.TokenProgram2,
		a.SysvarInstructions,
	}
}

func (a *SwapAccounts) Metas() ([]cpi.AccountMeta, error) {
	return swapSchema.Build(a.addresses())
}
