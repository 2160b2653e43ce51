package raydiumv4

import (
	"context"
	"fmt"

	"dex-cpi-sol/internal/cpi"
)

func NewSwapBaseInInstruction(accounts *SwapAccounts, args SwapBaseInArgs) (cpi.Instruction, error) {
	data := args.Bytes()
	return VariantSwapBaseIn.Instruction(data[:], accounts.addresses())
}

func NewSwapBaseOutInstruction(accounts *SwapAccounts, args SwapBaseOutArgs) (cpi.Instruction, error) {
	data := args.Bytes()
	return VariantSwapBaseOut.Instruction(data[:], accounts.addresses())
}

func InvokeSwapBaseIn(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SwapBaseInArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapBaseInInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

func InvokeSwapBaseOut(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SwapBaseOutArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapBaseOutInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

// InvokeSwapRaw 使用抓取到的指令数据，首字节决定 base_in / base_out，其他值返回 ErrUnrecognizedVariant
func InvokeSwapRaw(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, raw [SwapDataSize]byte, signers ...cpi.Signer) error {
	v, ok := Program.Identify(raw[:], SwapAccountsCount)
	if !ok {
		return fmt.Errorf("%w: raydium_v4 tag=%d", cpi.ErrUnrecognizedVariant, raw[0])
	}
	ix, err := v.Instruction(raw[:], accounts.addresses())
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}
