package data

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
	"github.com/mmp/squall/template"
)

// ErrUnsupportedSpatialDifferencing is returned when a Template 7.3 body
// declares a differencing order or extra-descriptor width other than the
// one this unpacker implements.
var ErrUnsupportedSpatialDifferencing = errors.New("data: only second-order spatial differencing with 2-octet extra descriptors is supported")

// ReadData7_3 unpacks Template 7.3 (complex packing with second-order
// spatial differencing). Zmin is added once per raw group value during
// group unpacking; the recurrence applied afterward carries no additive
// term of its own.
func ReadData7_3(r io.Reader, tmpl *template.DataRep5_3) ([]int32, error) {
	if tmpl.SpatialDiffOrder != 2 || tmpl.NumOctetsExtraDescriptors != 2 {
		return nil, ErrUnsupportedSpatialDifferencing
	}
	width := int(tmpl.NumOctetsExtraDescriptors)

	rdr := internal.NewReader(r)
	z1, err := rdr.ReadOctets(width)
	if err != nil {
		return nil, errors.Wrap(err, "template 7.3: Z1")
	}
	z2, err := rdr.ReadOctets(width)
	if err != nil {
		return nil, errors.Wrap(err, "template 7.3: Z2")
	}
	zmin, err := rdr.ReadOctets(width)
	if err != nil {
		return nil, errors.Wrap(err, "template 7.3: Zmin")
	}

	dr2 := tmpl.Base
	dr0 := dr2.Base.Base
	ng := int(dr2.NumberOfGroups)

	br := internal.NewBitReader(r)
	bitsPerValue := int(dr0.NumBitsPerValue)

	groupRefs := make([]uint64, ng)
	for i := range groupRefs {
		v, err := br.ReadBits(bitsPerValue)
		if err != nil {
			return nil, errors.Wrap(err, "template 7.3: group reference")
		}
		groupRefs[i] = v
	}
	br.Align()

	groupWidths := make([]uint64, ng)
	for i := range groupWidths {
		v, err := br.ReadBits(int(dr2.NumBitsGroupWidth))
		if err != nil {
			return nil, errors.Wrap(err, "template 7.3: group width")
		}
		groupWidths[i] = v
	}
	br.Align()

	groupLengths := make([]uint64, ng)
	for i := range groupLengths {
		v, err := br.ReadBits(int(dr2.NumBitsGroupLength))
		if err != nil {
			return nil, errors.Wrap(err, "template 7.3: group length")
		}
		groupLengths[i] = v
	}
	br.Align()

	var output []int32
	for i := 0; i < ng; i++ {
		actualWidth := int(dr2.ReferenceGroupWidth) + int(groupWidths[i])
		var actualLength int
		if i < ng-1 {
			actualLength = int(dr2.ReferenceGroupLength) + int(dr2.GroupLengthIncrement)*int(groupLengths[i])
		} else {
			actualLength = int(dr2.TrueLengthLastGroup)
		}
		for j := 0; j < actualLength; j++ {
			v, err := br.ReadBits(actualWidth)
			if err != nil {
				return nil, errors.Wrap(err, "template 7.3: group value")
			}
			output = append(output, zmin+int32(groupRefs[i])+int32(v))
		}
	}

	if len(output) > 0 {
		output[0] = z1
	}
	if len(output) > 1 {
		output[1] = z2
	}
	for i := 2; i < len(output); i++ {
		output[i] = output[i] + 2*output[i-1] - output[i-2]
	}
	return output, nil
}
