package invoker

import (
	"dex-cpi-sol/internal/cpi"

	"github.com/blocto/solana-go-sdk/common"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/gagliardetto/solana-go"
)

// ToSDK 转换为 blocto solana-go-sdk 指令
func ToSDK(ix cpi.Instruction) sdktypes.Instruction {
	metas := make([]sdktypes.AccountMeta, len(ix.Accounts))
	for i, a := range ix.Accounts {
		metas[i] = sdktypes.AccountMeta{
			PubKey:     common.PublicKey(a.PubKey),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		}
	}
	return sdktypes.Instruction{
		ProgramID: common.PublicKey(ix.ProgramID),
		Accounts:  metas,
		Data:      append([]byte(nil), ix.Data...),
	}
}

// ToSolanaGo 转换为 gagliardetto/solana-go 指令，供基于该 SDK 的宿主使用
func ToSolanaGo(ix cpi.Instruction) *solana.GenericInstruction {
	metas := make(solana.AccountMetaSlice, len(ix.Accounts))
	for i, a := range ix.Accounts {
		metas[i] = solana.NewAccountMeta(solana.PublicKey(a.PubKey), a.IsWritable, a.IsSigner)
	}
	return solana.NewInstruction(solana.PublicKey(ix.ProgramID), metas, append([]byte(nil), ix.Data...))
}
