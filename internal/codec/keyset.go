package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"dex-cpi-sol/internal/types"
)

// ErrKeysetWidth 字段宽度与密钥组覆盖的宽度不一致（配置错误）
var ErrKeysetWidth = errors.New("keyset width mismatch")

// Keyset 是一组 8 字节密钥，按顺序与字段的 8 字节小端分块逐一异或。
// 变换是对合的：同一个 Keyset 既用于解码也用于编码。
// 零值 Keyset 表示不做混淆。
type Keyset struct {
	keys []uint64
}

func NewKeyset(keys ...uint64) Keyset {
	k := make([]uint64, len(keys))
	copy(k, keys)
	return Keyset{keys: k}
}

// Len 密钥个数
func (k Keyset) Len() int { return len(k.keys) }

// Width 该密钥组可覆盖的字段宽度（字节）
func (k Keyset) Width() int { return len(k.keys) * 8 }

func (k Keyset) IsZero() bool { return len(k.keys) == 0 }

// Key 返回第 i 个密钥，按 i mod Len 取模
func (k Keyset) Key(i int) uint64 {
	if len(k.keys) == 0 {
		return 0
	}
	i %= len(k.keys)
	if i < 0 {
		i += len(k.keys)
	}
	return k.keys[i]
}

// Transform 将 src 逐块异或后写入 dst，dst 与 src 可以是同一切片。
// 宽度不一致时返回 ErrKeysetWidth，不做任何截断。
func (k Keyset) Transform(dst, src []byte) error {
	if len(src) != k.Width() {
		return fmt.Errorf("%w: field=%d, keyset=%d", ErrKeysetWidth, len(src), k.Width())
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: dst=%d, field=%d", ErrKeysetWidth, len(dst), len(src))
	}
	for i, key := range k.keys {
		chunk := binary.LittleEndian.Uint64(src[i*8:])
		binary.LittleEndian.PutUint64(dst[i*8:], chunk^key)
	}
	return nil
}

// Pubkey 对 32 字节地址做一次变换（编码、解码相同）
func (k Keyset) Pubkey(p types.Pubkey) (types.Pubkey, error) {
	var out types.Pubkey
	if err := k.Transform(out[:], p[:]); err != nil {
		return types.Pubkey{}, err
	}
	return out, nil
}

// Scalar 对单个 u64 做异或，密钥按 keyIndex mod Len 选取
func (k Keyset) Scalar(v uint64, keyIndex int) uint64 {
	return v ^ k.Key(keyIndex)
}
