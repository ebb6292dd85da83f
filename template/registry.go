package template

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/mmp/squall/internal"
)

// ErrUnsupportedTemplate is wrapped with the specific family and number by
// ReadGrid, ReadProduct, and ReadDataRep when a template dispatch is
// well-formed but not implemented.
var ErrUnsupportedTemplate = errors.New("template: unsupported template number")

var gridTemplates = []uint16{0}

var productTemplates = []uint16{0, 1, 8, 11, 50000, 50011, 50031}

var dataRepTemplates = []uint16{0, 2, 3, 200}

// ReadGrid dispatches Section 3's template-specific body by template
// number. Only Template 3.0 (latitude/longitude) is implemented; any other
// number is a closed-set dispatch failure, not a silent skip.
func ReadGrid(templateNumber uint16, r *internal.Reader) (interface{}, error) {
	if !slices.Contains(gridTemplates, templateNumber) {
		return nil, errors.Wrapf(ErrUnsupportedTemplate, "grid template %d", templateNumber)
	}
	switch templateNumber {
	case 0:
		return ReadGrid3_0(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedTemplate, "grid template %d", templateNumber)
	}
}

// ReadProduct dispatches Section 4's template-specific body by template
// number.
func ReadProduct(templateNumber uint16, r *internal.Reader) (interface{}, error) {
	if !slices.Contains(productTemplates, templateNumber) {
		return nil, errors.Wrapf(ErrUnsupportedTemplate, "product template %d", templateNumber)
	}
	switch templateNumber {
	case 0:
		return ReadProduct4_0(r)
	case 1:
		return ReadProduct4_1(r)
	case 8:
		return ReadProduct4_8(r)
	case 11:
		return ReadProduct4_11(r)
	case 50000:
		return ReadProduct4_50000(r)
	case 50011:
		return ReadProduct4_50011(r)
	case 50031:
		return ReadProduct4_50031(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedTemplate, "product template %d", templateNumber)
	}
}

// ReadDataRep dispatches Section 5's template-specific body by template
// number.
func ReadDataRep(templateNumber uint16, r *internal.Reader) (interface{}, error) {
	if !slices.Contains(dataRepTemplates, templateNumber) {
		return nil, errors.Wrapf(ErrUnsupportedTemplate, "data representation template %d", templateNumber)
	}
	switch templateNumber {
	case 0:
		return ReadDataRep5_0(r)
	case 2:
		return ReadDataRep5_2(r)
	case 3:
		return ReadDataRep5_3(r)
	case 200:
		return ReadDataRep5_200(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedTemplate, "data representation template %d", templateNumber)
	}
}
