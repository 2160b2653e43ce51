package solfiv2

import (
	"fmt"

	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/cpi"
)

// Side 线上 side 字段取值
type Side uint64

const (
	SideBuy  Side = 0 // Quote -> Base
	SideSell Side = 1 // Base -> Quote
)

var sideByDirection = map[cpi.Direction]Side{
	cpi.QuoteToBase: SideBuy,
	cpi.BaseToQuote: SideSell,
}

func SideOf(d cpi.Direction) (Side, error) {
	s, ok := sideByDirection[d]
	if !ok {
		return 0, fmt.Errorf("%w: solfi_v2 %d", cpi.ErrUnknownDirection, d)
	}
	return s, nil
}

// Valid 线上只接受 0 / 1
func (s Side) Valid() bool { return s == SideBuy || s == SideSell }

func SideFromIsSell(isSell bool) Side {
	if isSell {
		return SideSell
	}
	return SideBuy
}

func (s Side) Direction() cpi.Direction {
	if s == SideSell {
		return cpi.BaseToQuote
	}
	return cpi.QuoteToBase
}

// SwapArgs 指令数据布局（25 字节）:
//
//	[0]     instruction_id = 0x07
//	[1:9]   amount_in (u64 LE)
//	[9:17]  min_amount_out (u64 LE)
//	[17:25] side (u64 LE, 0=Buy, 1=Sell)
type SwapArgs struct {
	AmountIn     uint64
	MinAmountOut uint64 // 市价单通常为 0
	Side         Side
}

func Buy(amountIn, minAmountOut uint64) SwapArgs {
	return SwapArgs{AmountIn: amountIn, MinAmountOut: minAmountOut, Side: SideBuy}
}

func Sell(amountIn, minAmountOut uint64) SwapArgs {
	return SwapArgs{AmountIn: amountIn, MinAmountOut: minAmountOut, Side: SideSell}
}

// Bytes side 不是 0 / 1 时返回 ErrUnknownDirection
func (a SwapArgs) Bytes() ([SwapDataSize]byte, error) {
	var data [SwapDataSize]byte
	if !a.Side.Valid() {
		return data, fmt.Errorf("%w: solfi_v2 side=%d", cpi.ErrUnknownDirection, a.Side)
	}
	off := 0
	codec.PutUint8(data[:], SwapInstructionID, &off)
	codec.PutUint64(data[:], a.AmountIn, &off)
	codec.PutUint64(data[:], a.MinAmountOut, &off)
	codec.PutUint64(data[:], uint64(a.Side), &off)
	return data, nil
}

func DecodeSwapArgs(data []byte) (SwapArgs, bool) {
	if len(data) != SwapDataSize || data[0] != SwapInstructionID {
		return SwapArgs{}, false
	}
	off := 1
	a := SwapArgs{
		AmountIn:     codec.GetUint64(data, &off),
		MinAmountOut: codec.GetUint64(data, &off),
	}
	a.Side = Side(codec.GetUint64(data, &off))
	if !a.Side.Valid() {
		return SwapArgs{}, false
	}
	return a, true
}
