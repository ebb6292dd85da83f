package template

import (
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// DataRep5_0 is Data Representation Template 5.0 (simple packing). It also
// forms the prefix of Templates 5.2 and 5.3.
type DataRep5_0 struct {
	ReferenceValue    float32
	BinaryScaleFactor int16
	DecimalScaleFactor int16
	NumBitsPerValue   uint8
	OriginalFieldType uint8
}

// ReadDataRep5_0 parses Data Representation Template 5.0.
func ReadDataRep5_0(r *internal.Reader) (*DataRep5_0, error) {
	var d DataRep5_0
	var err error

	if d.ReferenceValue, err = r.Float32(); err != nil {
		return nil, errors.Wrap(err, "template 5.0: reference value")
	}
	if d.BinaryScaleFactor, err = r.Int16(); err != nil {
		return nil, errors.Wrap(err, "template 5.0: binary scale factor")
	}
	if d.DecimalScaleFactor, err = r.Int16(); err != nil {
		return nil, errors.Wrap(err, "template 5.0: decimal scale factor")
	}
	if d.NumBitsPerValue, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.0: number of bits per value")
	}
	if d.OriginalFieldType, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.0: original field type")
	}
	return &d, nil
}

// DataRep5_2 is Data Representation Template 5.2 (complex packing). It
// extends Template 5.0 with group-splitting parameters and also forms the
// prefix of Template 5.3.
type DataRep5_2 struct {
	Base                         *DataRep5_0
	GroupSplittingMethod         uint8
	MissingValueManagement       uint8
	PrimaryMissingValueSubstitute   float32
	SecondaryMissingValueSubstitute float32
	NumberOfGroups               uint32
	ReferenceGroupWidth          uint8
	NumBitsGroupWidth            uint8
	ReferenceGroupLength         uint32
	GroupLengthIncrement         uint8
	TrueLengthLastGroup          uint32
	NumBitsGroupLength           uint8
}

// ReadDataRep5_2 parses Data Representation Template 5.2.
func ReadDataRep5_2(r *internal.Reader) (*DataRep5_2, error) {
	base, err := ReadDataRep5_0(r)
	if err != nil {
		return nil, err
	}
	var d DataRep5_2
	d.Base = base
	if d.GroupSplittingMethod, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: group splitting method")
	}
	if d.MissingValueManagement, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: missing value management")
	}
	if d.PrimaryMissingValueSubstitute, err = r.Float32(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: primary missing value substitute")
	}
	if d.SecondaryMissingValueSubstitute, err = r.Float32(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: secondary missing value substitute")
	}
	if d.NumberOfGroups, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: number of groups")
	}
	if d.ReferenceGroupWidth, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: reference group width")
	}
	if d.NumBitsGroupWidth, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: number of bits for group widths")
	}
	if d.ReferenceGroupLength, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: reference group length")
	}
	if d.GroupLengthIncrement, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: group length increment")
	}
	if d.TrueLengthLastGroup, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: true length of last group")
	}
	if d.NumBitsGroupLength, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.2: number of bits for group lengths")
	}
	return &d, nil
}

// DataRep5_3 is Data Representation Template 5.3 (complex packing with
// spatial differencing). It extends Template 5.2 with the differencing
// order and the width of the stored first-values/minimum descriptors.
type DataRep5_3 struct {
	Base                       *DataRep5_2
	SpatialDiffOrder           uint8
	NumOctetsExtraDescriptors  uint8
}

// ReadDataRep5_3 parses Data Representation Template 5.3.
func ReadDataRep5_3(r *internal.Reader) (*DataRep5_3, error) {
	base, err := ReadDataRep5_2(r)
	if err != nil {
		return nil, err
	}
	var d DataRep5_3
	d.Base = base
	if d.SpatialDiffOrder, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.3: order of spatial differencing")
	}
	if d.NumOctetsExtraDescriptors, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.3: number of octets for extra descriptors")
	}
	return &d, nil
}

// DataRep5_200 is Data Representation Template 5.200 (run-length packing
// with level values). NumberOfBitsForLevelValues must equal 8 for the
// run-length data unpacker to apply; callers check that precondition, this
// constructor only reads the fields.
type DataRep5_200 struct {
	NumberOfBitsForLevelValues uint8
	MaximumValueOfLevelValues  uint16
	NumberOfLevels             uint16
	DecimalScaleFactor         int8
	LevelValues                []int16
}

// ReadDataRep5_200 parses Data Representation Template 5.200, including its
// trailing variable-length level value table.
func ReadDataRep5_200(r *internal.Reader) (*DataRep5_200, error) {
	var d DataRep5_200
	var err error

	if d.NumberOfBitsForLevelValues, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 5.200: number of bits for level values")
	}
	if d.MaximumValueOfLevelValues, err = r.Uint16(); err != nil {
		return nil, errors.Wrap(err, "template 5.200: maximum value of level values")
	}
	if d.NumberOfLevels, err = r.Uint16(); err != nil {
		return nil, errors.Wrap(err, "template 5.200: number of levels")
	}
	if d.DecimalScaleFactor, err = r.Int8(); err != nil {
		return nil, errors.Wrap(err, "template 5.200: decimal scale factor")
	}
	d.LevelValues = make([]int16, d.NumberOfLevels)
	for i := range d.LevelValues {
		v, err := r.Int16()
		if err != nil {
			return nil, errors.Wrap(err, "template 5.200: level value")
		}
		d.LevelValues[i] = v
	}
	return &d, nil
}
