package template

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmp/squall/internal"
)

func product4_0Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteByte(0)                         // parameter category
	buf.WriteByte(1)                         // parameter number
	buf.WriteByte(2)                         // type of generating process
	buf.WriteByte(0)                         // background process
	buf.WriteByte(0)                         // generating process identifier
	buf.Write([]byte{0x00, 0x00})            // hours after data cutoff
	buf.WriteByte(0)                         // minutes after data cutoff
	buf.WriteByte(1)                         // indicator of unit of time range (hour)
	buf.Write([]byte{0x00, 0x00, 0x00, 0x06}) // forecast time = 6
	buf.WriteByte(100)                       // type of first fixed surface
	buf.WriteByte(0)                         // scale factor of first fixed surface
	buf.Write([]byte{0x00, 0x00, 0x03, 0x84}) // scaled value = 900
	buf.WriteByte(255)                       // type of second fixed surface (missing)
	buf.WriteByte(0)                         // scale factor of second fixed surface
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00}) // scaled value
	return buf.Bytes()
}

func TestReadProduct4_0(t *testing.T) {
	r := internal.NewReader(bytes.NewReader(product4_0Bytes()))
	p, err := ReadProduct4_0(r)
	require.NoError(t, err)
	require.EqualValues(t, 1, p.ParameterNumber)
	require.EqualValues(t, 6, p.ForecastTime)
	require.EqualValues(t, 100, p.TypeOfFirstFixedSurface)
	require.EqualValues(t, 900, p.ScaledValueOfFirstFixedSurface)
}

func TestReadProduct4_1(t *testing.T) {
	data := append(product4_0Bytes(), 1, 3, 20)
	r := internal.NewReader(bytes.NewReader(data))
	p, err := ReadProduct4_1(r)
	require.NoError(t, err)
	require.EqualValues(t, 1, p.TypeOfEnsembleForecast)
	require.EqualValues(t, 3, p.PerturbationNumber)
	require.EqualValues(t, 20, p.NumberOfForecastsInEnsemble)
}

func timeIntervalBytes(numRanges uint8, missing uint32) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x07, 0xE8})      // year 2024
	buf.WriteByte(1)                   // month
	buf.WriteByte(15)                  // day
	buf.WriteByte(0)                   // hour
	buf.WriteByte(0)                   // minute
	buf.WriteByte(0)                   // second
	buf.WriteByte(numRanges)
	buf.Write([]byte{
		byte(missing >> 24), byte(missing >> 16), byte(missing >> 8), byte(missing),
	})
	for i := uint8(0); i < numRanges; i++ {
		buf.WriteByte(0)                          // statistical process
		buf.WriteByte(2)                          // type of time increment
		buf.WriteByte(1)                          // unit of time range
		buf.Write([]byte{0x00, 0x00, 0x00, 0x06}) // length of time range
		buf.WriteByte(1)                          // unit of time for increment
		buf.Write([]byte{0x00, 0x00, 0x00, 0x06}) // time increment
	}
	return buf.Bytes()
}

func TestReadTimeIntervalSingleMissingField(t *testing.T) {
	r := internal.NewReader(bytes.NewReader(timeIntervalBytes(2, 42)))
	ti, err := ReadTimeInterval(r)
	require.NoError(t, err)
	require.EqualValues(t, 2024, ti.Year)
	require.EqualValues(t, 2, ti.NumberOfTimeRanges)
	require.EqualValues(t, 42, ti.TotalNumberOfDataValuesMissing)
	require.Len(t, ti.TimeRanges, 2)
	require.EqualValues(t, 6, ti.TimeRanges[0].LengthOfTimeRange)
}

func TestReadProduct4_8(t *testing.T) {
	data := append(product4_0Bytes(), timeIntervalBytes(1, 0)...)
	r := internal.NewReader(bytes.NewReader(data))
	p, err := ReadProduct4_8(r)
	require.NoError(t, err)
	require.Len(t, p.Interval.TimeRanges, 1)
}

func TestReadProduct4_50011RadarOperatingInfo(t *testing.T) {
	data := append(product4_0Bytes(), timeIntervalBytes(0, 0)...)
	for i := 0; i < 3; i++ {
		data = append(data, 0, 0, 0, 0, 0, 0, 0, byte(i+1))
	}
	r := internal.NewReader(bytes.NewReader(data))
	p, err := ReadProduct4_50011(r)
	require.NoError(t, err)
	require.EqualValues(t, 1, p.RadarOperatingInfo1)
	require.EqualValues(t, 2, p.RadarOperatingInfo2)
	require.EqualValues(t, 3, p.RadarOperatingInfo3)
}
