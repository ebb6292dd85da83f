package template

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmp/squall/internal"
)

func TestReadGrid3_0(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(6)                                  // shape of earth
	buf.WriteByte(0)                                   // scale factor of radius
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})          // scale value of radius
	buf.WriteByte(0)                                   // scale factor of major axis
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})          // scale value of major axis
	buf.WriteByte(0)                                   // scale factor of minor axis
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})          // scale value of minor axis
	buf.Write([]byte{0x00, 0x00, 0x01, 0x90})          // Ni = 400
	buf.Write([]byte{0x00, 0x00, 0x00, 0xC8})          // Nj = 200
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})          // basic angle
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})          // subdivisions
	buf.Write([]byte{0x00, 0x36, 0xEE, 0x80})          // La1 = 3600000
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})          // Lo1 = 0
	buf.WriteByte(0x30)                                 // resolution and component flags
	buf.Write([]byte{0x80, 0x36, 0xEE, 0x80})          // La2 = -3600000 (sign-magnitude)
	buf.Write([]byte{0x01, 0x5F, 0x90, 0x00})          // Lo2
	buf.Write([]byte{0x00, 0x00, 0x00, 0x64})          // Di
	buf.Write([]byte{0x00, 0x00, 0x00, 0x64})          // Dj
	buf.WriteByte(0x40)                                 // scanning mode

	r := internal.NewReader(bytes.NewReader(buf.Bytes()))
	g, err := ReadGrid3_0(r)
	require.NoError(t, err)
	require.EqualValues(t, 6, g.ShapeOfEarth)
	require.EqualValues(t, 400, g.Ni)
	require.EqualValues(t, 200, g.Nj)
	require.EqualValues(t, 3600000, g.La1)
	require.EqualValues(t, -3600000, g.La2)
	require.EqualValues(t, 0x40, g.ScanningMode)
}
