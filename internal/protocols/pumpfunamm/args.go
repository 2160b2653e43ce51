package pumpfunamm

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/cpi"
)

// VariantFor buy：quote -> base；sell：base -> quote
func VariantFor(d cpi.Direction) cpi.Variant {
	if d == cpi.BaseToQuote {
		return VariantSell
	}
	return VariantBuy
}

type BuyArgs struct {
	BaseAmountOut    uint64
	MaxQuoteAmountIn uint64
}

func (a BuyArgs) Bytes() ([]byte, error) {
	return codec.EncodeAnchor(buyDisc, a, SwapDataSize)
}

type SellArgs struct {
	BaseAmountIn      uint64
	MinQuoteAmountOut uint64
}

func (a SellArgs) Bytes() ([]byte, error) {
	return codec.EncodeAnchor(sellDisc, a, SwapDataSize)
}

func decodeAmounts(data []byte, disc codec.Discriminator) (uint64, uint64, bool) {
	if len(data) != SwapDataSize || !disc.Matches(data) {
		return 0, 0, false
	}
	offset := 8
	a := codec.GetUint64(data, &offset)
	b := codec.GetUint64(data, &offset)
	return a, b, true
}

func DecodeBuyArgs(data []byte) (BuyArgs, bool) {
	out, maxIn, ok := decodeAmounts(data, buyDisc)
	return BuyArgs{BaseAmountOut: out, MaxQuoteAmountIn: maxIn}, ok
}

func DecodeSellArgs(data []byte) (SellArgs, bool) {
	in, minOut, ok := decodeAmounts(data, sellDisc)
	return SellArgs{BaseAmountIn: in, MinQuoteAmountOut: minOut}, ok
}
