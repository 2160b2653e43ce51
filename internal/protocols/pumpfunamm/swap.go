package pumpfunamm

import (
	"context"

	"dex-cpi-sol/internal/cpi"
)

func NewBuyInstruction(accounts *SwapAccounts, args BuyArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantBuy.Instruction(data, accounts.addresses())
}

func NewSellInstruction(accounts *SwapAccounts, args SellArgs) (cpi.Instruction, error) {
	data, err := args.Bytes()
	if err != nil {
		return cpi.Instruction{}, err
	}
	return VariantSell.Instruction(data, accounts.addresses())
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
