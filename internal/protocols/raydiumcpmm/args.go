package raydiumcpmm

import "dex-cpi-sol/internal/codec"

type SwapBaseInputArgs struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

func (a SwapBaseInputArgs) Bytes() ([]byte, error) {
	return codec.EncodeAnchor(swapBaseInputDisc, a, SwapDataSize)
}

type SwapBaseOutputArgs struct {
	MaxAmountIn uint64
	AmountOut   uint64
}

func (a SwapBaseOutputArgs) Bytes() ([]byte, error) {
	return codec.EncodeAnchor(swapBaseOutputDisc, a, SwapDataSize)
}
