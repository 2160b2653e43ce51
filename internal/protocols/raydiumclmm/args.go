package raydiumclmm

import (
	"dex-cpi-sol/internal/codec"

	"lukechampine.com/uint128"
)

type SwapArgs struct {
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimitX64    uint128.Uint128 // 0 表示不限制
	IsBaseInput          bool            // true: Amount 为精确输入
}

func (a SwapArgs) Bytes() ([]byte, error) {
	return codec.EncodeAnchor(swapDisc, a, SwapDataSize)
}

func DecodeSwapArgs(data []byte) (SwapArgs, bool) {
	if len(data) != SwapDataSize || !swapDisc.Matches(data) {
		return SwapArgs{}, false
	}
	off := 8
	a := SwapArgs{
		Amount:               codec.GetUint64(data, &off),
		OtherAmountThreshold: codec.GetUint64(data, &off),
		SqrtPriceLimitX64:    codec.GetUint128(data, &off),
	}
	a.IsBaseInput = codec.GetUint8(data, &off) == 1
	return a, true
}
