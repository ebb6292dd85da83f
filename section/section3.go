package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// Header3 is the Grid Definition Section (Section 3). Its
// template-specific body is parsed separately by the template registry
// based on TemplateNumber.
type Header3 struct {
	Length                uint32
	Source                uint8
	NumDataPoints         uint32
	NumOctetsOptionalList uint8
	InterpretOptionalList uint8
	TemplateNumber        uint16
}

// BodyLen is the number of template-specific bytes following this header.
func (h *Header3) BodyLen() uint32 {
	return h.Length - 14
}

// ReadHeader3 parses Section 3's selector fields.
func ReadHeader3(r *internal.Reader, length uint32, number uint8) (*Header3, error) {
	if err := ensureNumber(3, number); err != nil {
		return nil, err
	}
	source, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 3: source of grid definition")
	}
	numPoints, err := r.Uint32()
	if err != nil {
		return nil, errors.Wrap(err, "section 3: number of data points")
	}
	numOctets, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 3: number of octets for optional list")
	}
	interpret, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 3: interpretation of optional list")
	}
	templateNumber, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "section 3: template number")
	}
	return &Header3{
		Length:                length,
		Source:                source,
		NumDataPoints:         numPoints,
		NumOctetsOptionalList: numOctets,
		InterpretOptionalList: interpret,
		TemplateNumber:        templateNumber,
	}, nil
}
