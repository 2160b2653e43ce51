package consts

import "dex-cpi-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	//  Programs
	SystemProgramStr          = "11111111111111111111111111111111"
	TokenProgramStr           = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	TokenProgram2022Str       = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
	AssociatedTokenProgramStr = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"
	MemoProgramStr            = "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"
	ComputeBudgetProgramIdStr = "ComputeBudget111111111111111111111111111111"

	// Sysvars
	ClockSysvarStr        = "SysvarC1ock11111111111111111111111111111111"
	InstructionsSysvarStr = "Sysvar1nstructions1111111111111111111111111"
	RentSysvarStr         = "SysvarRent111111111111111111111111111111111"

	// USD 计价基础报价币（具有稳定市场价格）
	WSOLMintStr = "So11111111111111111111111111111111111111112"
	USDCMintStr = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	USDTMintStr = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"

	// DEX: 逆向所得的私有做市程序（非 Anchor）
	HumidiFiProgramStr = "9H6tua7jkLhdm3w8BvgpTn5LZNU7g4ZynDmCiNN3q6Rp"
	SolFiV2ProgramStr  = "SV2EYYJyRz2YhfXwXnhNAevDEui5Q6yrfyo13WtupPF"

	// DEX: Raydium
	RaydiumV4ProgramStr   = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"
	RaydiumCPMMProgramStr = "CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C"
	RaydiumCLMMProgramStr = "CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK"

	// DEX: PumpFun
	PumpFunProgramStr    = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
	PumpFunAMMProgramStr = "pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA"

	// DEX: Meteora
	MeteoraDLMMProgramStr = "LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo"

	// DEX: Orca
	OrcaWhirlpoolProgramStr = "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc"

	// Known Owner Addresses
	RaydiumV4AuthorityStr   = "5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1"
	RaydiumCPMMAuthorityStr = "GpMZbSM2GgvTKHJirzeGfMFoaZ8UR2X7F4v8vHTvxFbL"

	// Anchor event authority PDA（seeds = ["__event_authority"]）
	PumpFunEventAuthorityStr     = "Ce6TQqeHC9p8KetsN6JsjHK7UTZk7nasjjnr7XxXp9F1"
	PumpFunAMMEventAuthorityStr  = "GS4CU59F31iL7aR2Q8zVS8DRrcRnXX1yjQ66TqNVQnaR"
	MeteoraDLMMEventAuthorityStr = "D1ZN9Wj1fRSUQfCjhvnu1hqDMT7hzjzBBpi12nVniYD6"

	// 全局配置账户
	PumpFunGlobalStr          = "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf"
	PumpFunAMMGlobalConfigStr = "ADyA8hdefvWN2dbGGWFotbzWxrAvLW83WG6QCVXvJKqw"
)

var (
	// Programs
	SystemProgram          = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram           = types.PubkeyFromBase58(TokenProgramStr)
	TokenProgram2022       = types.PubkeyFromBase58(TokenProgram2022Str)
	AssociatedTokenProgram = types.PubkeyFromBase58(AssociatedTokenProgramStr)
	MemoProgram            = types.PubkeyFromBase58(MemoProgramStr)

	// Sysvars
	ClockSysvar        = types.PubkeyFromBase58(ClockSysvarStr)
	InstructionsSysvar = types.PubkeyFromBase58(InstructionsSysvarStr)
	RentSysvar         = types.PubkeyFromBase58(RentSysvarStr)

	// 稳定报价币（USD 估值）
	WSOLMint = types.PubkeyFromBase58(WSOLMintStr)
	USDCMint = types.PubkeyFromBase58(USDCMintStr)
	USDTMint = types.PubkeyFromBase58(USDTMintStr)

	// DEX Program
	HumidiFiProgram      = types.PubkeyFromBase58(HumidiFiProgramStr)
	SolFiV2Program       = types.PubkeyFromBase58(SolFiV2ProgramStr)
	RaydiumV4Program     = types.PubkeyFromBase58(RaydiumV4ProgramStr)
	RaydiumCPMMProgram   = types.PubkeyFromBase58(RaydiumCPMMProgramStr)
	RaydiumCLMMProgram   = types.PubkeyFromBase58(RaydiumCLMMProgramStr)
	PumpFunProgram       = types.PubkeyFromBase58(PumpFunProgramStr)
	PumpFunAMMProgram    = types.PubkeyFromBase58(PumpFunAMMProgramStr)
	MeteoraDLMMProgram   = types.PubkeyFromBase58(MeteoraDLMMProgramStr)
	OrcaWhirlpoolProgram = types.PubkeyFromBase58(OrcaWhirlpoolProgramStr)

	// Known Owner
	RaydiumV4Authority   = types.PubkeyFromBase58(RaydiumV4AuthorityStr)
	RaydiumCPMMAuthority = types.PubkeyFromBase58(RaydiumCPMMAuthorityStr)

	// Event Authority
	PumpFunEventAuthority     = types.PubkeyFromBase58(PumpFunEventAuthorityStr)
	PumpFunAMMEventAuthority  = types.PubkeyFromBase58(PumpFunAMMEventAuthorityStr)
	MeteoraDLMMEventAuthority = types.PubkeyFromBase58(MeteoraDLMMEventAuthorityStr)

	// Global Config
	PumpFunGlobal          = types.PubkeyFromBase58(PumpFunGlobalStr)
	PumpFunAMMGlobalConfig = types.PubkeyFromBase58(PumpFunAMMGlobalConfigStr)
)
