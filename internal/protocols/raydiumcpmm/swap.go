package raydiumcpmm

import (
	"context"

	"dex-cpi-sol/internal/cpi"
)

func NewSwapBaseInputInstruction(accounts *SwapAccounts, args SwapBaseInputArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSwapBaseInput.Instruction(data, accounts.addresses())
}

func NewSwapBaseOutputInstruction(accounts *SwapAccounts, args SwapBaseOutputArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSwapBaseOutput.Instruction(data, accounts.addresses())
}

func InvokeSwapBaseInput(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SwapBaseInputArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapBaseInputInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

func InvokeSwapBaseOutput(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SwapBaseOutputArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapBaseOutputInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

// InvokeSwapRaw 使用抓取到的指令数据，方法 ID 决定版本
func InvokeSwapRaw(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, raw [SwapDataSize]byte, signers ...cpi.Signer) error {
	v, ok := Program.Identify(raw[:], SwapAccountsCount)
	if !ok {
		return cpi.ErrUnrecognizedVariant
	}
	ix, err := v.Instruction(raw[:], accounts.addresses())
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}
