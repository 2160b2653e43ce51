package solfiv2

import (
	"context"

	"dex-cpi-sol/internal/cpi"
)

func NewSwapInstruction(accounts *SwapAccounts, args SwapArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSwap.Instruction(data[:], accounts.addresses())
}

func InvokeSwap(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SwapArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

// InvokeSwapWithSide 便捷入口，isSell=true 表示 Base -> Quote
func InvokeSwapWithSide(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, amountIn, minAmountOut uint64, isSell bool, signers ...cpi.Signer) error {
	args := SwapArgs{AmountIn: amountIn, MinAmountOut: minAmountOut, Side: SideFromIsSell(isSell)}
	return InvokeSwap(ctx, inv, accounts, args, signers...)
}

// InvokeSwapRaw 直接使用抓取到的指令数据
func InvokeSwapRaw(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, raw [SwapDataSize]byte, signers ...cpi.Signer) error {
	ix, err := VariantSwap.Instruction(raw[:], accounts.addresses())
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}
