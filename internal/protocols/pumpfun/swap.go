package pumpfun

import (
	"context"

	"dex-cpi-sol/internal/cpi"
)

func NewBuyInstruction(accounts *SwapAccounts, args BuyArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantBuy.Instruction(data, accounts.buyAddresses())
}

func NewSellInstruction(accounts *SwapAccounts, args SellArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSell.Instruction(data, accounts.sellAddresses())
}

func InvokeBuy(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args BuyArgs, signers ...cpi.Signer) error {
	ix, err := NewBuyInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

func InvokeSell(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, args SellArgs, signers ...cpi.Signer) error {
	ix, err := NewSellInstruction(accounts, args)
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}

// InvokeSwapRaw 方法 ID 决定 buy / sell 及对应的账户顺序
func InvokeSwapRaw(ctx context.Context, inv cpi.Invoker, accounts *SwapAccounts, raw [SwapDataSize]byte, signers ...cpi.Signer) error {
	var (
		ix  cpi.Instruction
		err error
	)
	switch {
	case buyDisc.Matches(raw[:]):
		ix, err = VariantBuy.Instruction(raw[:], accounts.buyAddresses())
	case sellDisc.Matches(raw[:]):
		ix, err = VariantSell.Instruction(raw[:], accounts.sellAddresses())
	default:
		return cpi.ErrUnrecognizedVariant
	}
	if err != nil {
		return err
	}
	return cpi.Invoke(ctx, inv, ix, signers...)
}
