// Package template parses the fixed-width template bodies selected by
// Sections 3, 4, and 5 once the section header has identified which
// template number governs the bytes that follow. Each record has its own
// ReadXxx constructor; ReadGrid, ReadProduct, and ReadDataRep dispatch from
// a template number to the matching constructor.
package template

import (
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// Grid3_0 is Grid Definition Template 3.0 (latitude/longitude grid).
type Grid3_0 struct {
	ShapeOfEarth            uint8
	ScaleFactorOfRadius     uint8
	ScaleValueOfRadius      uint32
	ScaleFactorOfMajorAxis  uint8
	ScaleValueOfMajorAxis   uint32
	ScaleFactorOfMinorAxis  uint8
	ScaleValueOfMinorAxis   uint32
	Ni                      uint32
	Nj                      uint32
	BasicAngle              uint32
	SubdivisionsBasicAngle  uint32
	La1                     int32
	Lo1                     int32
	ResolutionAndComponents uint8
	La2                     int32
	Lo2                     int32
	Di                      uint32
	Dj                      uint32
	ScanningMode            uint8
}

// ReadGrid3_0 parses Grid Definition Template 3.0 from a reader positioned
// at the template's first octet.
func ReadGrid3_0(r *internal.Reader) (*Grid3_0, error) {
	var g Grid3_0
	var err error

	if g.ShapeOfEarth, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: shape of earth")
	}
	if g.ScaleFactorOfRadius, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: scale factor of radius")
	}
	if g.ScaleValueOfRadius, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: scale value of radius")
	}
	if g.ScaleFactorOfMajorAxis, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: scale factor of major axis")
	}
	if g.ScaleValueOfMajorAxis, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: scale value of major axis")
	}
	if g.ScaleFactorOfMinorAxis, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: scale factor of minor axis")
	}
	if g.ScaleValueOfMinorAxis, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: scale value of minor axis")
	}
	if g.Ni, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: Ni")
	}
	if g.Nj, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: Nj")
	}
	if g.BasicAngle, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: basic angle")
	}
	if g.SubdivisionsBasicAngle, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: subdivisions of basic angle")
	}
	if g.La1, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: La1")
	}
	if g.Lo1, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: Lo1")
	}
	if g.ResolutionAndComponents, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: resolution and component flags")
	}
	if g.La2, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: La2")
	}
	if g.Lo2, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: Lo2")
	}
	if g.Di, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: Di")
	}
	if g.Dj, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: Dj")
	}
	if g.ScanningMode, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 3.0: scanning mode")
	}
	return &g, nil
}
