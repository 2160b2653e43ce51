package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestAnchorDiscriminator(t *testing.T) {
	cases := map[string]uint64{
		"swap":             0xf8c69e91e17587c8,
		"swap_v2":          0x2b04ed0b1ac91e62,
		"swap_base_input":  0x8fbe5adac41e33de,
		"swap_base_output": 0x37d96256a34ab4ad,
		"buy":              0x66063d1201daebea,
		"sell":             0x33e685a4017f83ad,
		"swap2":            0x414b3f4ceb5b5b88,
		"swap_exact_out":   0xfa49652126cf4bb8,
	}
	for name, want := range cases {
		d := AnchorDiscriminator(name)
		assert.Equal(t, want, d.Uint64(), name)
		assert.Equal(t, d, DiscriminatorFromUint64(want), name)
	}
}

func TestDiscriminatorMatches(t *testing.T) {
	d := AnchorDiscriminator("buy")
	assert.True(t, d.Matches(append(d[:], 1, 2, 3)))
	assert.False(t, d.Matches(d[:7]))
	assert.False(t, AnchorDiscriminator("sell").Matches(d[:]))
}

type testArgs struct {
	Amount    uint64
	Threshold uint64
	Limit     uint128.Uint128
	Flag      bool
}

func TestEncodeAnchor(t *testing.T) {
	d := AnchorDiscriminator("swap")
	args := testArgs{Amount: 1, Threshold: 2, Limit: uint128.From64(3), Flag: true}

	data, err := EncodeAnchor(d, args, 41)
	require.NoError(t, err)
	require.Len(t, data, 41)
	assert.Equal(t, "f8c69e91e17587c8", hex.EncodeToString(data[:8]))
	assert.Equal(t, "0100000000000000", hex.EncodeToString(data[8:16]))
	assert.Equal(t, "0200000000000000", hex.EncodeToString(data[16:24]))
	assert.Equal(t, "03000000000000000000000000000000", hex.EncodeToString(data[24:40]))
	assert.Equal(t, byte(1), data[40])

	_, err = EncodeAnchor(d, args, 42)
	assert.ErrorIs(t, err, ErrPayloadSize)
}
