package raydiumv4

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// Raydium V4 Swap 指令账户布局（swap_base_in / swap_base_out 相同）：
//
//	0.  `[]`         SPL Token Program
//	1.  `[writable]` AMM 主账户（池子地址）
//	2.  `[]`         权限 PDA
//	3.  `[writable]` AMM open_orders
//	4.  `[writable]` AMM target_orders
//	5.  `[writable]` 池子 coin vault
//	6.  `[writable]` 池子 pc vault
//	7.  `[]`         市场程序 ID（Serum / OpenBook）
//	8.  `[writable]` 市场账户
//	9.  `[writable]` 市场 bids
//	10. `[writable]` 市场 asks
//	11. `[writable]` 市场 event queue
//	12. `[writable]` 市场 coin vault
//	13. `[writable]` 市场 pc vault
//	14. `[]`         市场 vault signer
//	15. `[writable]` 用户 source token 账户
//	16. `[writable]` 用户 destination token 账户
//	17. `[signer]`   用户钱包
func newSwapSchema(name string) *cpi.Schema {
	return cpi.NewSchema(name, consts.RaydiumV4Program,
		cpi.FixedRole("token_program", cpi.Readonly, consts.TokenProgram),
		cpi.Role("amm", cpi.Writable),
		cpi.FixedRole("amm_authority", cpi.Readonly, consts.RaydiumV4Authority),
		cpi.Role("amm_open_orders", cpi.Writable),
		cpi.Role("amm_target_orders", cpi.Writable),
		cpi.Role("pool_coin_vault", cpi.Writable),
		cpi.Role("pool_pc_vault", cpi.Writable),
		cpi.Role("market_program", cpi.Readonly),
		cpi.Role("market", cpi.Writable),
		cpi.Role("market_bids", cpi.Writable),
		cpi.Role("market_asks", cpi.Writable),
		cpi.Role("market_event_queue", cpi.Writable),
		cpi.Role("market_coin_vault", cpi.Writable),
		cpi.Role("market_pc_vault", cpi.Writable),
		cpi.Role("market_vault_signer", cpi.Readonly),
		cpi.Role("user_source", cpi.Writable),
		cpi.Role("user_destination", cpi.Writable),
		cpi.Role("user_owner", cpi.ReadonlySigner),
	)
}

var (
	VariantSwapBaseIn = cpi.Variant{
		Name:     "swap_base_in",
		Schema:   newSwapSchema("raydium_v4_swap_base_in"),
		DataSize: SwapDataSize,
		Match:    func(data []byte) bool { return data[0] == SwapBaseIn },
	}
	VariantSwapBaseOut = cpi.Variant{
		Name:     "swap_base_out",
		Schema:   newSwapSchema("raydium_v4_swap_base_out"),
		DataSize: SwapDataSize,
		Match:    func(data []byte) bool { return data[0] == SwapBaseOut },
	}
)

type SwapAccounts struct {
	TokenProgram      types.Pubkey
	Amm               types.Pubkey
	AmmAuthority      types.Pubkey
	AmmOpenOrders     types.Pubkey
	AmmTargetOrders   types.Pubkey
	PoolCoinVault     types.Pubkey
	PoolPcVault       types.Pubkey
	MarketProgram     types.Pubkey
	Market            types.Pubkey
	MarketBids        types.Pubkey
	MarketAsks        types.Pubkey
	MarketEventQueue  types.Pubkey
	MarketCoinVault   types.Pubkey
	MarketPcVault     types.Pubkey
	MarketVaultSigner types.Pubkey
	UserSource        types.Pubkey
	UserDestination   types.Pubkey
	UserOwner         types.Pubkey
}

func (a *SwapAccounts) addresses() []types.Pubkey {
	return []types.Pubkey{
		a.TokenProgram,
		a.Amm,
		a.AmmAuthority,
		a.AmmOpenOrders,
		a.AmmTargetOrders,
		a.PoolCoinVault,
		a.PoolPcVault,
		a.MarketProgram,
		a.Market,
		a.MarketBids,
		a.MarketAsks,
		a.MarketEventQueue,
		a.MarketCoinVault,
		a.MarketPcVault,
		a.MarketVaultSigner,
		a.UserSource,
		a.UserDestination,
		a.UserOwner,
	}
}

func (a *SwapAccounts) Metas() ([]cpi.AccountMeta, error) {
	return VariantSwapBaseIn.Schema.Build(a.addresses())
}
