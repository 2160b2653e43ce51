package humidifi

import (
	"encoding/binary"
	"fmt"

	"dex-cpi-sol/internal/cpi"
)

// 指令数据布局（V1 与 V2 相同，25 字节）:
//
//	[0:8]   LE(swap_id ^ K0)
//	[8:16]  LE(0 ^ K1)            占位，取值来自少量样本交易
//	[16]    0x38 | is_base_to_quote
//	[17:25] LE(0 ^ K3)            占位，取值来自少量样本交易
const (
	directionByteOffset = 16
	directionByteBase   = 0x38
)

// is_base_to_quote 的线上取值。V1 与聚合器约定相反，V2 与聚合器一致。
var (
	swapV1IsBaseToQuote = map[cpi.Direction]bool{
		cpi.QuoteToBase: true,
		cpi.BaseToQuote: false,
	}
	swapV2IsBaseToQuote = map[cpi.Direction]bool{
		cpi.QuoteToBase: false,
		cpi.BaseToQuote: true,
	}
)

func IsBaseToQuoteV1(d cpi.Direction) (bool, error) { return lookup(swapV1IsBaseToQuote, d) }

func IsBaseToQuoteV2(d cpi.Direction) (bool, error) { return lookup(swapV2IsBaseToQuote, d) }

func lookup(table map[cpi.Direction]bool, d cpi.Direction) (bool, error) {
	v, ok := table[d]
	if !ok {
		return false, fmt.Errorf("%w: humidifi %d", cpi.ErrUnknownDirection, d)
	}
	return v, nil
}

// FromAggregator 聚合器的 is_base_to_quote=true 对应 BaseToQuote，V1 与 V2 相同
func FromAggregator(isBaseToQuote bool) cpi.Direction {
	return cpi.FromAggregator(isBaseToQuote)
}

type SwapArgs struct {
	SwapID    uint64 // 标识具体池子
	Direction cpi.Direction
}

func (a SwapArgs) BytesV1() ([SwapDataSize]byte, error) {
	flag, err := IsBaseToQuoteV1(a.Direction)
	if err != nil {
		return [SwapDataSize]byte{}, err
	}
	return a.encode(flag), nil
}

func (a SwapArgs) BytesV2() ([SwapDataSize]byte, error) {
	flag, err := IsBaseToQuoteV2(a.Direction)
	if err != nil {
		return [SwapDataSize]byte{}, err
	}
	return a.encode(flag), nil
}

func (a SwapArgs) encode(isBaseToQuote bool) [SwapDataSize]byte {
	var data [SwapDataSize]byte
	binary.LittleEndian.PutUint64(data[0:8], XorU64(a.SwapID, 0))
	binary.LittleEndian.PutUint64(data[8:16], XorU64(0, 1))
	data[directionByteOffset] = directionByteBase
	if isBaseToQuote {
		data[directionByteOffset] |= 0x01
	}
	binary.LittleEndian.PutUint64(data[17:25], XorU64(0, 3))
	return data
}

// DecodeSwapArgsV1 从观测到的 V1 指令数据还原参数，方向字节不符合观测基值时返回 false
func DecodeSwapArgsV1(data []byte) (SwapArgs, bool) {
	return decode(data, swapV1IsBaseToQuote)
}

func DecodeSwapArgsV2(data []byte) (SwapArgs, bool) {
	return decode(data, swapV2IsBaseToQuote)
}

func decode(data []byte, table map[cpi.Direction]bool) (SwapArgs, bool) {
	if len(data) != SwapDataSize || data[directionByteOffset]&^0x01 != directionByteBase {
		return SwapArgs{}, false
	}
	flag := data[directionByteOffset]&0x01 == 1
	args := SwapArgs{SwapID: XorU64(binary.LittleEndian.Uint64(data[0:8]), 0)}
	for d, v := range table {
		if v == flag {
			args.Direction = d
		}
	}
	return args, true
}
