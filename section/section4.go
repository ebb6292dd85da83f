package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// Header4 is the Product Definition Section (Section 4). The
// template-specific body it selects (one of Templates 4.0/4.1/4.8/4.11/
// 4.50000/4.50011/4.50031) is parsed separately by the template registry.
type Header4 struct {
	Length                uint32
	NumCoordinateValues   uint16 // nv
	ProductTemplateNumber uint16
}

// BodyLen is the number of template-specific bytes following this header.
func (h *Header4) BodyLen() uint32 {
	return h.Length - 9
}

// ReadHeader4 parses Section 4's selector fields.
func ReadHeader4(r *internal.Reader, length uint32, number uint8) (*Header4, error) {
	if err := ensureNumber(4, number); err != nil {
		return nil, err
	}
	nv, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "section 4: number of coordinate values")
	}
	templateNumber, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "section 4: template number")
	}
	return &Header4{Length: length, NumCoordinateValues: nv, ProductTemplateNumber: templateNumber}, nil
}
