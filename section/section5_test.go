package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmp/squall/internal"
)

func TestReadHeader5(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x27, 0x10, // number of values = 10000
		0x00, 0x00, // template number 5.0
	}
	r := internal.NewReader(bytes.NewReader(data))

	h, err := ReadHeader5(r, 21, 5)
	require.NoError(t, err)
	require.EqualValues(t, 10000, h.NumberOfValues)
	require.EqualValues(t, 0, h.TemplateNumber)
	require.EqualValues(t, 10, h.BodyLen())
}

func TestReadHeader5RejectsWrongSectionNumber(t *testing.T) {
	r := internal.NewReader(bytes.NewReader(make([]byte, 6)))
	_, err := ReadHeader5(r, 21, 6)
	require.Error(t, err)
}
