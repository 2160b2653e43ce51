package codec

import (
	"encoding/binary"

	"dex-cpi-sol/internal/types"

	"lukechampine.com/uint128"
)

// 以下 Put/Get 均按小端序在 dst[*offset:] 处读写，并推进 offset。
// 调用方负责保证缓冲区长度，越界直接 panic（属于编程错误）。

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}

func PutBool(dst []byte, v bool, offset *int) {
	var b uint8
	if v {
		b = 1
	}
	PutUint8(dst, b, offset)
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func PutUint128(dst []byte, v uint128.Uint128, offset *int) {
	v.PutBytes(dst[*offset:])
	*offset += 16
}

func PutPubkey(dst []byte, v types.Pubkey, offset *int) {
	copy(dst[*offset:], v[:])
	*offset += 32
}

func GetUint8(src []byte, offset *int) uint8 {
	v := src[*offset]
	*offset += 1
	return v
}

func GetUint64(src []byte, offset *int) uint64 {
	v := binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
	return v
}

func GetUint128(src []byte, offset *int) uint128.Uint128 {
	v := uint128.FromBytes(src[*offset:])
	*offset += 16
	return v
}

func GetPubkey(src []byte, offset *int) types.Pubkey {
	var p types.Pubkey
	copy(p[:], src[*offset:*offset+32])
	*offset += 32
	return p
}
