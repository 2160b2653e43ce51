package meteoradlmm

import (
	"dex-cpi-sol/internal/codec"
)

type SwapArgs struct {
	AmountIn     uint64
	MinAmountOut uint64
}

func (a SwapArgs) Bytes() ([]byte, error) {
	return codec.EncodeAnchor(swapDisc, a, SwapDataSize)
}

type SwapExactOutArgs struct {
	MaxInAmount uint64
	OutAmount   uint64
}

func (a SwapExactOutArgs) Bytes() ([]byte, error) {
	return codec.EncodeAnchor(swapExactOutDisc, a, SwapDataSize)
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

func DecodeSwapArgs(data []byte) (SwapArgs, bool) {
	in, minOut, ok := decodeAmounts(data, swapDisc)
	return SwapArgs{AmountIn: in, MinAmountOut: minOut}, ok
}

func DecodeSwapExactOutArgs(data []byte) (SwapExactOutArgs, bool) {
	maxIn, out, ok := decodeAmounts(data, swapExactOutDisc)
	return SwapExactOutArgs{MaxInAmount: maxIn, OutAmount: out}, ok
}
