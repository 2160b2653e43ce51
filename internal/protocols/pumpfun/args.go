package pumpfun

import (
	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/cpi"
)

// VariantFor 方向决定指令：买入 token（SOL -> token）为 buy，卖出为 sell
func VariantFor(d cpi.Direction) cpi.Variant {
	if d == cpi.BaseToQuote {
		return VariantSell
	}
	return VariantBuy
}

type BuyArgs struct {
	Amount     uint64 // 期望获得的 token 数量
	MaxSolCost uint64
}

func (a BuyArgs) Bytes() ([]byte, error) {
	return codec.EncodeAnchor(buyDisc, a, SwapDataSize)
}

type SellArgs struct {
	Amount       uint64 // 卖出的 token 数量
	MinSolOutput uint64
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
	amount, maxCost, ok := decodeAmounts(data, buyDisc)
	return BuyArgs{Amount: amount, MaxSolCost: maxCost}, ok
}

func DecodeSellArgs(data []byte) (SellArgs, bool) {
	amount, minOut, ok := decodeAmounts(data, sellDisc)
	return SellArgs{Amount: amount, MinSolOutput: minOut}, ok
}
