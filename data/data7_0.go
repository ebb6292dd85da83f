// Package data implements the Template 7 data unpackers: the bit-stream
// decoders that turn a Data Section body into an ordered sequence of signed
// 32-bit samples, guided by the Data Representation Template (5.x) that
// governs it. Applying reference value, binary scale, and decimal scale to
// recover physical units is left to the caller.
package data

import (
	"io"

	"github.com/mmp/squall/internal"
	"github.com/mmp/squall/template"
)

// ReadData7_0 unpacks Template 7.0 (simple packing): numberOfValues unsigned
// integers of width tmpl.NumBitsPerValue, read MSB-first with no
// inter-sample alignment. A width of 0 is well-formed and yields all zeros
// without consuming any bits.
func ReadData7_0(r io.Reader, numberOfValues uint32, tmpl *template.DataRep5_0) ([]int32, error) {
	samples := make([]int32, numberOfValues)
	if tmpl.NumBitsPerValue == 0 {
		return samples, nil
	}

	br := internal.NewBitReader(r)
	width := int(tmpl.NumBitsPerValue)
	for i := range samples {
		v, err := br.ReadBits(width)
		if err != nil {
			return nil, err
		}
		samples[i] = int32(v)
	}
	return samples, nil
}
