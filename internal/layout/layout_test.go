package layout

import (
	"encoding/binary"
	"testing"

	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKeys = codec.NewKeyset(1, 2, 3, 4)

func testLayout(t *testing.T) *Layout {
	l, err := New("test", 80, testKeys,
		Field{Name: "tag", Offset: 0, Width: 1},
		Field{Name: "mint", Offset: 8, Width: 32, Obfuscated: true},
		Field{Name: "vault", Offset: 40, Width: 32},
		Field{Name: "fee", Offset: 72, Width: 8},
	)
	require.NoError(t, err)
	return l
}

func TestNewRejectsInvalidLayouts(t *testing.T) {
	_, err := New("overlap", 64, codec.Keyset{},
		Field{Name: "a", Offset: 0, Width: 32},
		Field{Name: "b", Offset: 31, Width: 8},
	)
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	_, err = New("short", 16, codec.Keyset{}, Field{Name: "a", Offset: 8, Width: 16})
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	_, err = New("dup", 64, codec.Keyset{},
		Field{Name: "a", Offset: 0, Width: 8},
		Field{Name: "a", Offset: 8, Width: 8},
	)
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	_, err = New("keys", 64, codec.NewKeyset(1, 2), Field{Name: "a", Offset: 0, Width: 32, Obfuscated: true})
	assert.ErrorIs(t, err, codec.ErrKeysetWidth)

	assert.Panics(t, func() {
		MustNew("bad", 1, codec.Keyset{}, Field{Name: "a", Offset: 0, Width: 8})
	})
}

func TestFieldReaders(t *testing.T) {
	l := testLayout(t)
	buf := make([]byte, 80)
	buf[0] = 0xFF

	mint := types.PubkeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	encoded, err := testKeys.Pubkey(mint)
	require.NoError(t, err)
	copy(buf[8:], encoded[:])

	vault := types.PubkeyFromBase58("So11111111111111111111111111111111111111112")
	copy(buf[40:], vault[:])
	binary.LittleEndian.PutUint64(buf[72:], 25)

	snapshot := append([]byte(nil), buf...)

	tag, ok := l.Uint8(buf, "tag")
	require.True(t, ok)
	assert.Equal(t, uint8(0xFF), tag)

	got, ok := l.Pubkey(buf, "mint")
	require.True(t, ok)
	assert.Equal(t, mint, got)

	got, ok = l.Pubkey(buf, "vault")
	require.True(t, ok)
	assert.Equal(t, vault, got)

	fee, ok := l.Uint64(buf, "fee")
	require.True(t, ok)
	assert.Equal(t, uint64(25), fee)

	// 读取不修改输入
	assert.Equal(t, snapshot, buf)

	_, ok = l.Field(buf, "missing")
	assert.False(t, ok)

	// 类型宽度不符
	_, ok = l.Uint64(buf, "mint")
	assert.False(t, ok)
}

func TestOneByteShortIsUnavailable(t *testing.T) {
	l := testLayout(t)
	buf := make([]byte, l.MinSize()-1)
	assert.False(t, l.Available(buf))
	for _, name := range []string{"tag", "mint", "vault", "fee"} {
		b, ok := l.Field(buf, name)
		assert.False(t, ok, name)
		assert.Nil(t, b, name)
	}
}

func TestTagSet(t *testing.T) {
	s := NewTagSet(0xFF, 0xFE)
	assert.True(t, s.Known(0xFF))
	assert.False(t, s.Known(0x01))

	var empty TagSet
	assert.False(t, empty.Known(0))
}

func TestTokenAccountBalance(t *testing.T) {
	buf := make([]byte, TokenAccountMinSize)
	binary.LittleEndian.PutUint64(buf[64:], 123456789)
	v, ok := TokenAccountBalance(buf)
	require.True(t, ok)
	assert.Equal(t, uint64(123456789), v)

	_, ok = TokenAccountBalance(buf[:71])
	assert.False(t, ok)

	// 实际 token 账户为 165 字节
	v, ok = TokenAccountBalance(append(buf, make([]byte, 93)...))
	require.True(t, ok)
	assert.Equal(t, uint64(123456789), v)
}
