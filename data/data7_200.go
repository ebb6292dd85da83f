package data

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
	"github.com/mmp/squall/template"
)

// ErrUnsupportedLevelValueWidth is returned when a Template 5.200 body
// declares a level-value width other than 8 bits.
var ErrUnsupportedLevelValueWidth = errors.New("data: run-length unpacking only supports 8-bit level values")

// ReadData7_200 unpacks Template 7.200 (run-length packing with level
// values). bodySize is the Data Section body's byte count; the run-length
// encoding has no fixed sample count, so the body's length governs when
// decoding stops.
func ReadData7_200(r io.Reader, bodySize uint32, tmpl *template.DataRep5_200) ([]int32, error) {
	if tmpl.NumberOfBitsForLevelValues != 8 {
		return nil, ErrUnsupportedLevelValueWidth
	}
	mv := int(tmpl.MaximumValueOfLevelValues)

	rdr := internal.NewReader(r)
	lvByte, err := rdr.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "template 7.200: initial level byte")
	}
	lv := int(lvByte)

	var output []int32
	size := int(bodySize)
	p := 0
	for p < size {
		p++
		runLength := 1
		m := 1
		next := 0
		for p < size {
			nextByte, err := rdr.Uint8()
			if err != nil {
				return nil, errors.Wrap(err, "template 7.200: continuation byte")
			}
			next = int(nextByte)
			if next > mv {
				runLength += (next - mv - 1) * m
				m *= 255 - mv
				p++
			} else {
				break
			}
		}

		var value int32
		if lv == 0 {
			value = math.MinInt32
		} else {
			value = int32(tmpl.LevelValues[lv-1])
		}
		for k := 0; k < runLength; k++ {
			output = append(output, value)
		}
		lv = next
	}
	return output, nil
}
