package orcawhirlpool

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/cpi"

	"lukechampine.com/uint128"
)

type SwapArgs struct {
	Amount                 uint64
	OtherAmountThreshold   uint64
	SqrtPriceLimit         uint128.Uint128
	AmountSpecifiedIsInput bool
	AToB                   bool
}

// NewSwapArgs token A 视为 base：BaseToQuote 即 a_to_b。
// sqrt price 限制取该方向的极值，即不设价格保护。
func NewSwapArgs(d cpi.Direction, amount, threshold uint64, exactIn bool) SwapArgs {
	args := SwapArgs{
		Amount:                 amount,
		OtherAmountThreshold:   threshold,
		AmountSpecifiedIsInput: exactIn,
		AToB:                   d == cpi.BaseToQuote,
	}
	args.SqrtPriceLimit = DefaultSqrtPriceLimit(args.AToB)
	return args
}

// DefaultSqrtPriceLimit a_to_b 价格下行，取下限；反之取上限
func DefaultSqrtPriceLimit(aToB bool) uint128.Uint128 {
	if aToB {
		return MinSqrtPrice
	}
	return MaxSqrtPrice
}

func (a SwapArgs) Direction() cpi.Direction {
	if a.AToB {
		return cpi.BaseToQuote
	}
	return cpi.QuoteToBase
}

func (a SwapArgs) Bytes() ([]byte, error) {
	if a.SqrtPriceLimit.IsZero() {
		a.SqrtPriceLimit = DefaultSqrtPriceLimit(a.AToB)
	}
	return codec.EncodeAnchor(swapDisc, a, SwapDataSize)
}

func DecodeSwapArgs(data []byte) (SwapArgs, bool) {
	var a SwapArgs
	if len(data) != SwapDataSize || !swapDisc.Matches(data) {
		return a, false
	}
	offset := 8
	a.Amount = codec.GetUint64(data, &offset)
	a.OtherAmountThreshold = codec.GetUint64(data, &offset)
	a.SqrtPriceLimit = codec.GetUint128(data, &offset)
	a.AmountSpecifiedIsInput = codec.GetUint8(data, &offset) != 0
	a.AToB = codec.GetUint8(data, &offset) != 0
	return a, true
}
