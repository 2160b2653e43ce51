package meteoradlmm

import (
	"context"

	"dex-cpi-sol/internal/cpi"
)

func NewSwapInstruction(accounts *SwapAccounts, args SwapArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSwap.Instruction(data, accounts.addresses(), accounts.BinArrays...)
}

func NewSwapExactOutInstruction(accounts *SwapAccounts, args SwapExactOutArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSwapExactOut.Instruction(data, accounts.addresses(), accounts.BinArrays...)
}

func InvokeSwap(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SwapArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

func InvokeSwapExactOut(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SwapExactOutArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapExactOutInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

func InvokeSwapRaw(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, raw [SwapDataSize]byte, signers ...cpi.Signer) error {
	v, ok := Program.Identify(raw[:], SwapAccountsCount+len(accounts.BinArrays))
	if !ok {
		return cpi.ErrUnrecognizedVariant
	}
	ix, err := v.Instruction(raw[:], accounts.addresses(), accounts.BinArrays...)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}
