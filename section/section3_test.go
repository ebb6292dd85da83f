package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmp/squall/internal"
)

func TestReadHeader3(t *testing.T) {
	data := []byte{
		0,                      // source of grid definition
		0x00, 0x00, 0x27, 0x10, // number of data points = 10000
		0, // number of octets for optional list
		0, // interpretation of optional list
		0x00, 0x00, // template number 3.0
	}
	r := internal.NewReader(bytes.NewReader(data))

	h, err := ReadHeader3(r, 38, 3)
	require.NoError(t, err)
	require.EqualValues(t, 10000, h.NumDataPoints)
	require.EqualValues(t, 0, h.TemplateNumber)
	require.EqualValues(t, 24, h.BodyLen())
}

func TestReadHeader3RejectsWrongSectionNumber(t *testing.T) {
	r := internal.NewReader(bytes.NewReader(make([]byte, 9)))
	_, err := ReadHeader3(r, 23, 4)
	require.Error(t, err)
}
