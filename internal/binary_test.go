package internal

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderUint8(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0xFF, 0x7F}))

	for _, want := range []uint8{0x00, 0xFF, 0x7F} {
		got, err := r.Uint8()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := r.Uint8()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReaderUint32BigEndian(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))

	got, err := r.Uint32()
	require.NoError(t, err)
	require.EqualValues(t, 0x01020304, got)
}

// Sign-magnitude is a real departure from two's complement: the top bit is
// the sign, the rest is magnitude, and negative zero is representable.
func TestReaderInt16SignMagnitude(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int16
	}{
		{"positive", []byte{0x00, 0x7B}, 123},
		{"negative", []byte{0x80, 0x7B}, -123},
		{"positive zero", []byte{0x00, 0x00}, 0},
		{"negative zero decodes to zero", []byte{0x80, 0x00}, 0},
		{"max magnitude", []byte{0x7F, 0xFF}, 32767},
		{"min (most negative)", []byte{0xFF, 0xFF}, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.data))
			got, err := r.Int16()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReaderReadOctetsVariableWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		data  []byte
		want  int32
	}{
		{"1 octet positive", 1, []byte{0x05}, 5},
		{"1 octet negative", 1, []byte{0x85}, -5},
		{"2 octet negative", 2, []byte{0x80, 0x01}, -1},
		{"3 octet positive", 3, []byte{0x00, 0x00, 0x2A}, 42},
		{"3 octet negative", 3, []byte{0x80, 0x00, 0x2A}, -42},
		{"4 octet negative", 4, []byte{0x80, 0x00, 0x00, 0x01}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.data))
			got, err := r.ReadOctets(tt.width)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReaderReadOctetsRejectsUnsupportedWidth(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00, 0x00}))
	_, err := r.ReadOctets(5)
	require.Error(t, err)
}

func TestReaderFloat32(t *testing.T) {
	// 1.5f big-endian
	r := NewReader(bytes.NewReader([]byte{0x3F, 0xC0, 0x00, 0x00}))
	got, err := r.Float32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), got)
}

func TestBitReaderReadBitsCrossesByteBoundary(t *testing.T) {
	// 0b1010_1100 0b1111_0000, read 4 bits then 12 bits.
	br := NewBitReader(bytes.NewReader([]byte{0xAC, 0xF0}))

	first, err := br.ReadBits(4)
	require.NoError(t, err)
	require.EqualValues(t, 0b1010, first)

	second, err := br.ReadBits(12)
	require.NoError(t, err)
	require.EqualValues(t, 0b1100_1111_0000, second)
}

func TestBitReaderAlignThenOctetReads(t *testing.T) {
	// 3 bits of packed data, then align, then a 2-byte sign-magnitude value.
	br := NewBitReader(bytes.NewReader([]byte{0b101_00000, 0x80, 0x2A}))

	_, err := br.ReadBits(3)
	require.NoError(t, err)

	br.Align()
	got, err := br.ReadSignMagnitudeOctets(2)
	require.NoError(t, err)
	require.EqualValues(t, -42, got)
}

func TestBitReaderReadUnsignedOctetsRequiresAlignment(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0xFF, 0x00}))
	_, err := br.ReadBits(1)
	require.NoError(t, err)

	_, err = br.ReadUnsignedOctets(1)
	require.Error(t, err)
}
