package humidifi

import (
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"
)

// Swap V1 账户布局（9 个）:
//
//	0. `[signer]`   用户钱包
//	1. `[writable]` 池子账户（HumidiFi 所有）
//	2. `[writable]` 池子关联账户 1
//	3. `[writable]` 池子关联账户 2
//	4. `[writable]` 池子关联账户 3
//	5. `[writable]` 池子关联账户 4
//	6. `[]`         Clock Sysvar
//	7. `[]`         Token Program
//	8. `[]`         Instructions Sysvar
var swapV1Schema = cpi.NewSchema("humidifi_swap", consts.HumidiFiProgram,
	cpi.Role("user_wallet", cpi.ReadonlySigner),
	cpi.Role("pool", cpi.Writable),
	cpi.Role("pool_account_1", cpi.Writable),
	cpi.Role("pool_account_2", cpi.Writable),
	cpi.Role("pool_account_3", cpi.Writable),
	cpi.Role("pool_account_4", cpi.Writable),
	cpi.FixedRole("clock", cpi.Readonly, consts.ClockSysvar),
	cpi.FixedRole("token_program", cpi.Readonly, consts.TokenProgram),
	cpi.FixedRole("instructions_sysvar", cpi.Readonly, consts.InstructionsSysvar),
)

// Swap V2 账户布局（13 个，支持 Token-2022）:
//
//	0-5. `[writable]` 池子关联账户 0..5
//	6.   `[]`         Clock Sysvar
//	7.   `[]`         Token Program 1
//	8.   `[]`         Token Program 2
//	9.   `[]`         Instructions Sysvar
//	10.  `[]`         Quote Mint（token_a）
//	11.  `[]`         Base Mint（token_b）
//	12.  `[]`         附加账户
var swapV2Schema = cpi.NewSchema("humidifi_swap_v2", consts.HumidiFiProgram,
	cpi.Role("pool_account_0", cpi.Writable),
	cpi.Role("pool_account_1", cpi.Writable),
	cpi.Role("pool_account_2", cpi.Writable),
	cpi.Role("pool_account_3", cpi.Writable),
	cpi.Role("pool_account_4", cpi.Writable),
	cpi.Role("pool_account_5", cpi.Writable),
	cpi.FixedRole("clock", cpi.Readonly, consts.ClockSysvar),
	cpi.FixedRole("token_program_1", cpi.Readonly, consts.TokenProgram),
	cpi.Role("token_program_2", cpi.Readonly),
	cpi.FixedRole("instructions_sysvar", cpi.Readonly, consts.InstructionsSysvar),
	cpi.Role("quote_mint", cpi.Readonly),
	cpi.Role("base_mint", cpi.Readonly),
	cpi.Role("additional_account", cpi.Readonly),
)

var (
	VariantSwapV1 = cpi.Variant{Name: "swap", Schema: swapV1Schema, DataSize: SwapDataSize}
	VariantSwapV2 = cpi.Variant{Name: "swap_v2", Schema: swapV2Schema, DataSize: SwapDataSize}
)

// SwapV1Accounts 零值的 sysvar / token program 字段使用默认常量账户
type SwapV1Accounts struct {
	UserWallet         types.Pubkey
	Pool               types.Pubkey
	PoolAccount1       types.Pubkey
	PoolAccount2       types.Pubkey
	PoolAccount3       types.Pubkey
	PoolAccount4       types.Pubkey
	Clock              types.Pubkey
	TokenProgram       types.Pubkey
	InstructionsSysvar types.Pubkey
}

func (a *SwapV1Accounts) addresses() []types.Pubkey {
	return []types.Pubkey{
		a.UserWallet,
		a.Pool,
		a.PoolAccount1,
		a.PoolAccount2,
		a.PoolAccount3,
		a.PoolAccount4,
		a.Clock,
		a.TokenProgram,
		a.InstructionsSysvar,
	}
}

// Metas 按线上顺序展开并打上权限标记
func (a *SwapV1Accounts) Metas() ([]cpi.AccountMeta, error) {
	return swapV1Schema.Build(a.addresses())
}

type SwapV2Accounts struct {
	PoolAccount0       types.Pubkey
	PoolAccount1       types.Pubkey
	PoolAccount2       types.Pubkey
	PoolAccount3       types.Pubkey
	PoolAccount4       types.Pubkey
	PoolAccount5       types.Pubkey
	Clock              types.Pubkey
	TokenProgram1      types.Pubkey
	TokenProgram2      types.Pubkey
	InstructionsSysvar types.Pubkey
	QuoteMint          types.Pubkey
	BaseMint           types.Pubkey
	AdditionalAccount  types.Pubkey
}

func (a *SwapV2Accounts) addresses() []types.Pubkey {
	return []types.Pubkey{
		a.PoolAccount0,
		a.PoolAccount1,
		a.PoolAccount2,
		a.PoolAccount3,
		a.PoolAccount4,
		a.PoolAccount5,
		a.Clock,
		a.TokenProgram1,
		a.TokenProgram2,
		a.InstructionsSysvar,
		a.QuoteMint,
		a.BaseMint,
		a.AdditionalAccount,
	}
}

func (a *SwapV2Accounts) Metas() ([]cpi.AccountMeta, error) {
	return swapV2Schema.Build(a.addresses())
}
