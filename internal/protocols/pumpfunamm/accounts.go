package pumpfunamm

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// PumpSwap buy / sell 账户布局（两者一致）：
//
//	0.  `[writable]`         Pool
//	1.  `[writable, signer]` User
//	2.  `[]`                 Global Config
//	3.  `[]`                 Base Mint
//	4.  `[]`                 Quote Mint
//	5.  `[writable]`         User Base Token Account
//	6.  `[writable]`         User Quote Token Account
//	7.  `[writable]`         Pool Base Token Account
//	8.  `[writable]`         Pool Quote Token Account
//	9.  `[]`                 Protocol Fee Recipient
//	10. `[writable]`         Protocol Fee Recipient Token Account
//	11. `[]`                 Base Token Program
//	12. `[]`                 Quote Token Program
//	13. `[]`                 System Program
//	14. `[]`                 Associated Token Program
//	15. `[]`                 Event Authority
//	16. `[]`                 Program
//	17. `[writable]`         Coin Creator Vault ATA
//	18. `[]`                 Coin Creator Vault Authority
func newSwapSchema(name string) *cpi.Schema {
	return cpi.NewSchema(name, consts.PumpFunAMMProgram,
		cpi.Role("pool", cpi.Writable),
		cpi.Role("user", cpi.WritableSigner),
		cpi.FixedRole("global_config", cpi.Readonly, consts.PumpFunAMMGlobalConfig),
		cpi.Role("base_mint", cpi.Readonly),
		cpi.Role("quote_mint", cpi.Readonly),
		cpi.Role("user_base_token_account", cpi.Writable),
		cpi.Role("user_quote_token_account", cpi.Writable),
		cpi.Role("pool_base_token_account", cpi.Writable),
		cpi.Role("pool_quote_token_account", cpi.Writable),
		cpi.Role("protocol_fee_recipient", cpi.Readonly),
		cpi.Role("protocol_fee_recipient_token_account", cpi.Writable),
		cpi.FixedRole("base_token_program", cpi.Readonly, consts.TokenProgram),
		cpi.FixedRole("quote_token_program", cpi.Readonly, consts.TokenProgram),
		cpi.FixedRole("system_program", cpi.Readonly, consts.SystemProgram),
		cpi.FixedRole("associated_token_program", cpi.Readonly, consts.AssociatedTokenProgram),
		cpi.FixedRole("event_authority", cpi.Readonly, consts.PumpFunAMMEventAuthority),
		cpi.FixedRole("program", cpi.Readonly, consts.PumpFunAMMProgram),
		cpi.Role("coin_creator_vault_ata", cpi.Writable),
		cpi.Role("coin_creator_vault_authority", cpi.Readonly),
	)
}

var (
	buySchema  = newSwapSchema("pumpfunamm_buy")
	sellSchema = newSwapSchema("pumpfunamm_sell")

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

type SwapAccounts struct {
	Pool                             types.Pubkey
	User                             types.Pubkey
	GlobalConfig                     types.Pubkey
	BaseMint                         types.Pubkey
	QuoteMint                        types.Pubkey
	UserBaseTokenAccount             types.Pubkey
	UserQuoteTokenAccount            types.Pubkey
	PoolBaseTokenAccount             types.Pubkey
	PoolQuoteTokenAccount            types.Pubkey
	ProtocolFeeRecipient             types.Pubkey
	ProtocolFeeRecipientTokenAccount types.Pubkey
	BaseTokenProgram                 types.Pubkey
	QuoteTokenProgram                types.Pubkey
	SystemProgram                    types.Pubkey
	AssociatedTokenProgram           types.Pubkey
	EventAuthority                   types.Pubkey
	Program                          types.Pubkey
	CoinCreatorVaultAta              types.Pubkey
	CoinCreatorVaultAuthority        types.Pubkey
}

// FillFromPool 用池子账户数据补全 mint 与池子 vault
func (a *SwapAccounts) FillFromPool(p PoolAccounts) {
	a.BaseMint = p.BaseMint
	a.QuoteMint = p.QuoteMint
	a.PoolBaseTokenAccount = p.PoolBaseAccount
	a.PoolQuoteTokenAccount = p.PoolQuoteAccount
}

func (a *SwapAccounts) addresses() []types.Pubkey {
	return []types.Pubkey{
		a.Pool,
		a.User,
		a.GlobalConfig,
		a.BaseMint,
		a.QuoteMint,
		a.UserBaseTokenAccount,
		a.UserQuoteTokenAccount,
		a.PoolBaseTokenAccount,
		a.PoolQuoteTokenAccount,
		a.ProtocolFeeRecipient,
		a.ProtocolFeeRecipientTokenAccount,
		a.BaseTokenProgram,
		a.QuoteTokenProgram,
		a.SystemProgram,
		a.AssociatedTokenProgram,
		a.EventAuthority,
		a.Program,
		a.CoinCreatorVaultAta,
		a.CoinCreatorVaultAuthority,
	}
}

func (a *SwapAccounts) Metas() ([]cpi.AccountMeta, error) {
	return buySchema.Build(a.addresses())
}
