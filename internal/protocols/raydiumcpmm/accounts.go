package raydiumcpmm

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// Raydium CPMM Swap 账户结构（固定顺序，base_input / base_output 相同）:
//
// 0 - Payer（交易发起人，Signer）
// 1 - Authority（Raydium Vault 授权账户）
// 2 - Amm Config（AMM 配置账户）
// 3 - Pool（AMM 池子地址，Writable）
// 4 - Input Token Account（用户输入 TokenAccount，Writable）
// 5 - Output Token Account（用户输出 TokenAccount，Writable）
// 6 - Input Vault（池子输入 TokenVault，Writable）
// 7 - Output Vault（池子输出 TokenVault，Writable）
// 8 - Input Token Program
// 9 - Output Token Program
// 10 - Input Token Mint
// 11 - Output Token Mint
// 12 - Observation State（Writable）
func newSwapSchema(name string) *cpi.Schema {
	return cpi.NewSchema(name, consts.RaydiumCPMMProgram,
		cpi.Role("payer", cpi.ReadonlySigner),
		cpi.FixedRole("authority", cpi.Readonly, consts.RaydiumCPMMAuthority),
		cpi.Role("amm_config", cpi.Readonly),
		cpi.Role("pool_state", cpi.Writable),
		cpi.Role("input_token_account", cpi.Writable),
		cpi.Role("output_token_account", cpi.Writable),
		cpi.Role("input_vault", cpi.Writable),
		cpi.Role("output_vault", cpi.Writable),
		cpi.FixedRole("input_token_program", cpi.Readonly, consts.TokenProgram),
		cpi.FixedRole("output_token_program", cpi.Readonly, consts.TokenProgram),
		cpi.Role("input_token_mint", cpi.Readonly),
		cpi.Role("output_token_mint", cpi.Readonly),
		cpi.Role("observation_state", cpi.Writable),
	)
}

var (
	VariantSwapBaseInput = cpi.Variant{
		Name:     "swap_base_input",
		Schema:   newSwapSchema("raydium_cpmm_swap_base_input"),
		DataSize: SwapDataSize,
		Match:    swapBaseInputDisc.Matches,
	}
	VariantSwapBaseOutput = cpi.Variant{
		Name:     "swap_base_output",
		Schema:   newSwapSchema("raydium_cpmm_swap_base_output"),
		DataSize: SwapDataSize,
		Match:    swapBaseOutputDisc.Matches,
	}
)

// TokenSide 池子一侧 token 相关账户
type TokenSide struct {
	UserAccount  types.Pubkey
	Vault        types.Pubkey
	TokenProgram types.Pubkey // 零值表示 SPL Token
	Mint         types.Pubkey
}

type SwapAccounts struct {
	Payer       types.Pubkey
	Authority   types.Pubkey
	AmmConfig   types.Pubkey
	PoolState   types.Pubkey
	Input       TokenSide
	Output      TokenSide
	Observation types.Pubkey
}

// Orient 按方向放置 base / quote 两侧账户，CPMM 方向完全由 input / output 决定
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
		a.Authority,
		a.AmmConfig,
		a.PoolState,
		a.Input.UserAccount,
		a.Output.UserAccount,
		a.Input.Vault,
		a.Output.Vault,
		a.Input.TokenProgram,
		a.Output.TokenProgram,
		a.Input.Mint,
		a.Output.Mint,
		a.Observation,
	}
}

func (a *SwapAccounts) Metas() ([]cpi.AccountMeta, error) {
	return VariantSwapBaseInput.Schema.Build(a.addresses())
}
