package orcawhirlpool

import (
	"context"

	"dex-cpi-sol/internal/cpi"
)

func NewSwapInstruction(accounts *SwapAccounts, args SwapArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSwap.Instruction(data, accounts.addresses())
}

func InvokeSwap(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SwapArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

func InvokeSwapRaw(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, raw [SwapDataSize]byte, signers ...cpi.Signer) error {
	ix, err := VariantSwap.Instruction(raw[:], accounts.addresses())
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}
