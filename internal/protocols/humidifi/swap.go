package humidifi

import (
	"context"

	"dex-cpi-sol/internal/cpi"
)

func NewSwapV1Instruction(accounts *SwapV1Accounts, args SwapArgs) (cpi.Instruction, error) {
	data, err := args.BytesV1()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSwapV1.Instruction(data[:], accounts.addresses())
}

func NewSwapV2Instruction(accounts *SwapV2Accounts, args SwapArgs) (cpi.Instruction, error) {
	data, err := args.BytesV2()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSwapV2.Instruction(data[:], accounts.addresses())
}

// InvokeSwapV1 注意 V1 的 is_base_to_quote 与聚合器约定相反，由 SwapArgs.Direction 统一换算
func InvokeSwapV1(ctx context.Context, inv cpi.Invoker, accounts *SwapV1Accounts, args SwapArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapV1Instruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

func InvokeSwapV2(ctx context.Context, inv cpi.Invoker, accounts *SwapV2Accounts, args SwapArgs, signers ...cpi.Signer) error {
	ix, err := NewSwapV2Instruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

// InvokeSwapV1Raw 直接使用抓取到的已混淆指令数据
func InvokeSwapV1Raw(ctx context.Context, inv cpi.Invoker, accounts *SwapV1Accounts, raw [SwapDataSize]byte, signers ...cpi.Signer) error {
	ix, err := VariantSwapV1.Instruction(raw[:], accounts.addresses())
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

func InvokeSwapV2Raw(ctx context.Context, inv cpi.Invoker, accounts *SwapV2Accounts, raw [SwapDataSize]byte, signers ...cpi.Signer) error {
	ix, err := VariantSwapV2.Instruction(raw[:], accounts.addresses())
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}
