package section

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmp/squall/internal"
)

func TestReadHeader1WithoutTemplate(t *testing.T) {
	data := []byte{
		0x00, 0x07, // originating center
		0x00, 0x00, // originating subcenter
		2, // master tables version
		1, // local tables version
		1, // significance of reference time
		0x07, 0xE8, // year 2024
		3,  // month
		15, // day
		12, // hour
		30, // minute
		0,  // second
		0,  // production status
		1,  // type of data
	}
	r := internal.NewReader(bytes.NewReader(data))

	h, err := ReadHeader1(r, 21, 1)
	require.NoError(t, err)
	require.EqualValues(t, 7, h.OriginatingCenter)
	require.EqualValues(t, 2, h.MasterTablesVersion)
	require.EqualValues(t, 1, h.LocalTablesVersion)
	require.EqualValues(t, 1, h.SignificanceOfRefTime)
	require.Nil(t, h.TemplateNumber)
	require.EqualValues(t, 0, h.BodyLen())
	require.True(t, h.ReferenceTime.Equal(time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)))
	require.EqualValues(t, 0, h.ProductionStatus)
	require.EqualValues(t, 1, h.TypeOfData)
}

func TestReadHeader1WithTemplate(t *testing.T) {
	data := []byte{
		0x00, 0x07,
		0x00, 0x00,
		2, 1, 1,
		0x07, 0xE8, 3, 15, 12, 30, 0,
		0, 1,
		0x00, 0x01, // template number
	}
	r := internal.NewReader(bytes.NewReader(data))

	h, err := ReadHeader1(r, 23, 1)
	require.NoError(t, err)
	require.NotNil(t, h.TemplateNumber)
	require.EqualValues(t, 1, *h.TemplateNumber)
	require.EqualValues(t, 0, h.BodyLen())
}

func TestReadHeader1RejectsWrongSectionNumber(t *testing.T) {
	r := internal.NewReader(bytes.NewReader(make([]byte, 16)))
	_, err := ReadHeader1(r, 21, 2)
	require.Error(t, err)
}

func TestReadHeader1EdgeCaseTimestamps(t *testing.T) {
	tests := []struct {
		name   string
		year   uint16
		month  uint8
		day    uint8
		hour   uint8
		minute uint8
		second uint8
	}{
		{"midnight", 2024, 1, 1, 0, 0, 0},
		{"end of day", 2024, 1, 1, 23, 59, 59},
		{"leap year", 2024, 2, 29, 12, 0, 0},
		{"year 9999", 9999, 12, 31, 23, 59, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte{
				0x00, 0x07,
				0x00, 0x00,
				2, 1, 1,
				byte(tt.year >> 8), byte(tt.year), tt.month, tt.day, tt.hour, tt.minute, tt.second,
				0, 1,
			}
			r := internal.NewReader(bytes.NewReader(data))
			h, err := ReadHeader1(r, 21, 1)
			require.NoError(t, err)

			want := time.Date(int(tt.year), time.Month(tt.month), int(tt.day),
				int(tt.hour), int(tt.minute), int(tt.second), 0, time.UTC)
			require.True(t, h.ReferenceTime.Equal(want))
		})
	}
}
