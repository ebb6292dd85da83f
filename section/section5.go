package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// Header5 is the Data Representation Section (Section 5). The
// template-specific body it selects (one of Templates 5.0/5.2/5.3/5.200) is
// parsed separately by the template registry.
type Header5 struct {
	Length         uint32
	NumberOfValues uint32
	TemplateNumber uint16
}

// BodyLen is the number of template-specific bytes following this header.
func (h *Header5) BodyLen() uint32 {
	return h.Length - 11
}

// ReadHeader5 parses Section 5's selector fields.
func ReadHeader5(r *internal.Reader, length uint32, number uint8) (*Header5, error) {
	if err := ensureNumber(5, number); err != nil {
		return nil, err
	}
	numValues, err := r.Uint32()
	if err != nil {
		return nil, errors.Wrap(err, "section 5: number of values")
	}
	templateNumber, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "section 5: template number")
	}
	return &Header5{Length: length, NumberOfValues: numValues, TemplateNumber: templateNumber}, nil
}
