package section

import (
	"time"

	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// Header1 is the Identification Section (Section 1).
//
// The body through TypeOfData is always 21 octets; TemplateNumber is
// present only when Length exceeds that (the common case in practice is
// Length == 21 and TemplateNumber absent).
type Header1 struct {
	Length                uint32
	OriginatingCenter     uint16
	OriginatingSubcenter  uint16
	MasterTablesVersion   uint8
	LocalTablesVersion    uint8
	SignificanceOfRefTime uint8
	ReferenceTime         time.Time
	ProductionStatus      uint8
	TypeOfData            uint8
	TemplateNumber        *uint16
}

// BodyLen returns the number of template-specific bytes following the
// fields above; 0 when Length == 21 (no trailing template).
func (h *Header1) BodyLen() uint32 {
	if h.Length == 21 {
		return 0
	}
	return h.Length - 23
}

// ReadHeader1 parses Section 1 given its preamble length and a reader
// positioned at the first byte after the section-number byte.
func ReadHeader1(r *internal.Reader, length uint32, number uint8) (*Header1, error) {
	if err := ensureNumber(1, number); err != nil {
		return nil, err
	}

	center, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: originating center")
	}
	subcenter, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: originating subcenter")
	}
	masterVer, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: master tables version")
	}
	localVer, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: local tables version")
	}
	significance, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: significance of reference time")
	}
	year, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: year")
	}
	month, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: month")
	}
	day, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: day")
	}
	hour, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: hour")
	}
	minute, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: minute")
	}
	second, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: second")
	}
	productionStatus, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: production status")
	}
	typeOfData, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 1: type of processed data")
	}

	var templateNumber *uint16
	if length != 21 {
		tn, err := r.Uint16()
		if err != nil {
			return nil, errors.Wrap(err, "section 1: template number")
		}
		templateNumber = &tn
	}

	refTime := time.Date(int(year), time.Month(month), int(day), int(hour), int(minute), int(second), 0, time.UTC)

	return &Header1{
		Length:                length,
		OriginatingCenter:     center,
		OriginatingSubcenter:  subcenter,
		MasterTablesVersion:   masterVer,
		LocalTablesVersion:    localVer,
		SignificanceOfRefTime: significance,
		ReferenceTime:         refTime,
		ProductionStatus:      productionStatus,
		TypeOfData:            typeOfData,
		TemplateNumber:        templateNumber,
	}, nil
}
