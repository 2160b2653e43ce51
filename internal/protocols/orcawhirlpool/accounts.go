package orcawhirlpool

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// Orca Whirlpool swap 账户布局：
//
//	0.  `[]`         Token Program
//	1.  `[signer]`   Token Authority
//	2.  `[writable]` Whirlpool
//	3.  `[writable]` Token Owner Account A
//	4.  `[writable]` Token Vault A
//	5.  `[writable]` Token Owner Account B
//	6.  `[writable]` Token Vault B
//	7.  `[writable]` Tick Array 0
//	8.  `[writable]` Tick Array 1
//	9.  `[writable]` Tick Array 2
//	10. `[writable]` Oracle
//
// 方向由 a_to_b 参数决定，账户顺序固定。
var swapSchema = cpi.NewSchema("orcawhirlpool_swap", consts.OrcaWhirlpoolProgram,
	cpi.FixedRole("token_program", cpi.Readonly, consts.TokenProgram),
	cpi.Role("token_authority", cpi.ReadonlySigner),
	cpi.Role("whirlpool", cpi.Writable),
	cpi.Role("token_owner_account_a", cpi.Writable),
	cpi.Role("token_vault_a", cpi.Writable),
	cpi.Role("token_owner_account_b", cpi.Writable),
	cpi.Role("token_vault_b", cpi.Writable),
	cpi.Role("tick_array_0", cpi.Writable),
	cpi.Role("tick_array_1", cpi.Writable),
	cpi.Role("tick_array_2", cpi.Writable),
	cpi.Role("oracle", cpi.Writable),
)

var VariantSwap = cpi.Variant{
	Name:     "swap",
	Schema:   swapSchema,
	DataSize: SwapDataSize,
	Match:    swapDisc.Matches,
}

type SwapAccounts struct {
	TokenProgram       types.Pubkey
	TokenAuthority     types.Pubkey
	Whirlpool          types.Pubkey
	TokenOwnerAccountA types.Pubkey
	TokenVaultA        types.Pubkey
	TokenOwnerAccountB types.Pubkey
	TokenVaultB        types.Pubkey
	TickArrays         [3]types.Pubkey
	Oracle             types.Pubkey
}

// FillFromPool 用 Whirlpool 账户数据补全池子 vault
func (a *SwapAccounts) FillFromPool(p PoolAccounts) {
	a.TokenVaultA = p.TokenVaultA
	a.TokenVaultB = p.TokenVaultB
}

func (a *SwapAccounts) addresses() []types.Pubkey {
	return []types.Pubkey{
		a.TokenProgram,
		a.TokenAuthority,
		a.Whirlpool,
		a.TokenOwnerAccountA,
		a.TokenVaultA,
		a.TokenOwnerAccountB,
		a.TokenVaultB,
		a.TickArrays[0],
		a.TickArrays[1],
		a.TickArrays[2],
		a.Oracle,
	}
}

func (a *SwapAccounts) Metas() ([]cpi.AccountMeta, error) {
	return swapSchema.Build(a.addresses())
}
