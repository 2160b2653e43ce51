package raydiumclmm

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// Raydium CLMM Swap 指令账户布局：
//
//	0. `[signer]`   用户钱包（payer）
//	1. `[]`         AMM 配置账户
//	2. `[writable]` 池子账户
//	3. `[writable]` 用户输入 token 账户
//	4. `[writable]` 用户输出 token 账户
//	5. `[writable]` 池子输入 vault
//	6. `[writable]` 池子输出 vault
//	7. `[writable]` observation state
//	8. `[]`         Token Program
//	9. `[writable]` 当前 tick array
//	之后追加的账户均为 `[writable]` tick array
var swapSchema = cpi.NewSchema("raydium_clmm_swap", consts.RaydiumCLMMProgram,
	cpi.Role("payer", cpi.ReadonlySigner),
	cpi.Role("amm_config", cpi.Readonly),
	cpi.Role("pool_state", cpi.Writable),
	cpi.Role("input_token_account", cpi.Writable),
	cpi.Role("output_token_account", cpi.Writable),
	cpi.Role("input_vault", cpi.Writable),
	cpi.Role("output_vault", cpi.Writable),
	cpi.Role("observation_state", cpi.Writable),
	cpi.FixedRole("token_program", cpi.Readonly, consts.TokenProgram),
	cpi.Role("tick_array", cpi.Writable),
).WithRemaining(cpi.Writable)

var VariantSwap = cpi.Variant{
	Name:     "swap",
	Schema:   swapSchema,
	DataSize: SwapDataSize,
	Match:    swapDisc.Matches,
}

type TokenSide struct {
	UserAccount types.Pubkey
	Vault       types.Pubkey
}

type SwapAccounts struct {
	Payer            types.Pubkey
	AmmConfig        types.Pubkey
	PoolState        types.Pubkey
	Input            TokenSide
	Output           TokenSide
	ObservationState types.Pubkey
	TokenProgram     types.Pubkey
	TickArray        types.Pubkey
	ExtraTickArrays  []types.Pubkey
}

// Orient 方向由 input / output 决定，zero_for_one 由程序根据 input vault 推断
func (a *SwapAccounts) Orient(d cpi.Direction, base, quote TokenSide) {
	if d == cpi.BaseToQuote {
		a.Input, a.Output = base, quote
	} else {
		a.Input, a.Output = quote, base
	}
}

func (a *SwapAccounts) addresses() []types.Pubkey {
	return []types.Pubkey{
		a.Payer,
		a.AmmConfig,
		a.PoolState,
		a.Input.UserAccount,
		a.Output.UserAccount,
		a.Input.Vault,
		a.Output.Vault,
		a.ObservationState,
		a.TokenProgram,
		a.TickArray,
	}
}

func (a *SwapAccounts) Metas() ([]cpi.AccountMeta, error) {
	return swapSchema.Build(a.addresses(), a.ExtraTickArrays...)
}
