package raydiumv4

import "dex-cpi-sol/internal/codec"

// SwapBaseInArgs 精确输入
type SwapBaseInArgs struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

func (a SwapBaseInArgs) Bytes() [SwapDataSize]byte {
	return encode(SwapBaseIn, a.AmountIn, a.MinimumAmountOut)
}

// SwapBaseOutArgs 精确输出
type SwapBaseOutArgs struct {
	MaxAmountIn uint64
	AmountOut   uint64
}

func (a SwapBaseOutArgs) Bytes() [SwapDataSize]byte {
	return encode(SwapBaseOut, a.MaxAmountIn, a.AmountOut)
}

func encode(tag uint8, a, b uint64) [SwapDataSize]byte {
	var data [SwapDataSize]byte
	off := 0
	codec.PutUint8(data[:], tag, &off)
	codec.PutUint64(data[:], a, &off)
	codec.PutUint64(data[:], b, &off)
	return data
}

func DecodeSwapBaseIn(data []byte) (SwapBaseInArgs, bool) {
	if len(data) != SwapDataSize || data[0] != SwapBaseIn {
		return SwapBaseInArgs{}, false
	}
	off := 1
	return SwapBaseInArgs{AmountIn: codec.GetUint64(data, &off), MinimumAmountOut: codec.GetUint64(data, &off)}, true
}

func DecodeSwapBaseOut(data []byte) (SwapBaseOutArgs, bool) {
	if len(data) != SwapDataSize || data[0] != SwapBaseOut {
		return SwapBaseOutArgs{}, false
	}
	off := 1
	return SwapBaseOutArgs{MaxAmountIn: codec.GetUint64(data, &off), AmountOut: codec.GetUint64(data, &off)}, true
}
