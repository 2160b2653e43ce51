package pumpfun

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// Pump.fun Buy 账户布局：
//
//	0.  `[]`                 Global
//	1.  `[writable]`         Fee Recipient
//	2.  `[]`                 Mint
//	3.  `[writable]`         Bonding Curve
//	4.  `[writable]`         Associated Bonding Curve
//	5.  `[writable]`         Associated User
//	6.  `[writable, signer]` User
//	7.  `[]`                 System Program
//	8.  `[]`                 Token Program
//	9.  `[writable]`         Creator Vault
//	10. `[]`                 Event Authority
//	11. `[]`                 Program
//
// Sell 与 Buy 相同，但 8 / 9 互换（Creator Vault 在前，Token Program 在后）。
var (
	buySchema = cpi.NewSchema("pumpfun_buy", consts.PumpFunProgram,
		cpi.FixedRole("global", cpi.Readonly, consts.PumpFunGlobal),
		cpi.Role("fee_recipient", cpi.Writable),
		cpi.Role("mint", cpi.Readonly),
		cpi.Role("bonding_curve", cpi.Writable),
		cpi.Role("associated_bonding_curve", cpi.Writable),
		cpi.Role("associated_user", cpi.Writable),
		cpi.Role("user", cpi.WritableSigner),
		cpi.FixedRole("system_program", cpi.Readonly, consts.SystemProgram),
		cpi.FixedRole("token_program", cpi.Readonly, consts.TokenProgram),
		cpi.Role("creator_vault", cpi.Writable),
		cpi.FixedRole("event_authority", cpi.Readonly, consts.PumpFunEventAuthority),
		cpi.FixedRole("program", cpi.Readonly, consts.PumpFunProgram),
	)
	sellSchema = cpi.NewSchema("pumpfun_sell", consts.PumpFunProgram,
		cpi.FixedRole("global", cpi.Readonly, consts.PumpFunGlobal),
		cpi.Role("fee_recipient", cpi.Writable),
		cpi.Role("mint", cpi.Readonly),
		cpi.Role("bonding_curve", cpi.Writable),
		cpi.Role("associated_bonding_curve", cpi.Writable),
		cpi.Role("associated_user", cpi.Writable),
		cpi.Role("user", cpi.WritableSigner),
		cpi.FixedRole("system_program", cpi.Readonly, consts.SystemProgram),
		cpi.Role("creator_vault", cpi.Writable),
		cpi.FixedRole("token_program", cpi.Readonly, consts.TokenProgram),
		cpi.FixedRole("event_authority", cpi.Readonly, consts.PumpFunEventAuthority),
		cpi.FixedRole("program", cpi.Readonly, consts.PumpFunProgram),
	)
)

var (
	VariantBuy = cpi.Variant{
		Name:     "buy",
		Schema:   buySchema,
		DataSize: SwapDataSize,
		Match:    buyDisc.Matches,
	}
	VariantSell = cpi.Variant{
		Name:     "sell",
		Schema:   sellSchema,
		DataSize: SwapDataSize,
		Match:    sellDisc.Matches,
	}
)

// SwapAccounts buy / sell 共用，零值的常量账户字段使用默认地址
type SwapAccounts struct {
	Global                 types.Pubkey
	FeeRecipient           types.Pubkey
	Mint                   types.Pubkey
	BondingCurve           types.Pubkey
	AssociatedBondingCurve types.Pubkey
	AssociatedUser         types.Pubkey
	User                   types.Pubkey
	SystemProgram          types.Pubkey
	TokenProgram           types.Pubkey
	CreatorVault           types.Pubkey
	EventAuthority         types.Pubkey
	Program                types.Pubkey
}

func (a *SwapAccounts) buyAddresses() []types.Pubkey {
	return []types.Pubkey{
		a.Global,
		a.FeeRecipient,
		a.Mint,
		a.BondingCurve,
		a.AssociatedBondingCurve,
		a.AssociatedUser,
		a.User,
		a.SystemProgram,
		a.TokenProgram,
		a.CreatorVault,
		a.EventAuthority,
		a.Program,
	}
}

func (a *SwapAccounts) sellAddresses() []types.Pubkey {
	addrs := a.buyAddresses()
	addrs[8], addrs[9] = addrs[9], addrs[8]
	return addrs
}

func (a *SwapAccounts) BuyMetas() ([]cpi.AccountMeta, error) {
	return buySchema.Build(a.buyAddresses())
}

func (a *SwapAccounts) SellMetas() ([]cpi.AccountMeta, error) {
	return sellSchema.Build(a.sellAddresses())
}
