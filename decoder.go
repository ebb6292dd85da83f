package squall

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mmp/squall/data"
	"github.com/mmp/squall/internal"
	"github.com/mmp/squall/section"
	"github.com/mmp/squall/template"
)

// ProductBlock is one 4-5-6-7 product under a grid: a product definition,
// the data representation that governs the packed values, an optional
// bitmap, and the decoded (but not yet physically scaled) samples.
type ProductBlock struct {
	ProductTemplateNumber uint16
	Product               interface{}

	DataRepTemplateNumber uint16
	DataRep               interface{}
	NumberOfValues        uint32

	Bitmap  []bool // nil when Section 6's indicator reports no bitmap
	Samples []int32
}

// GridGroup is one grid definition (Section 3) together with every product
// block decoded under it, supporting the repeated 4-5-6-7 blocks a single
// grid may carry.
type GridGroup struct {
	GridTemplateNumber uint16
	Grid               interface{}
	Products           []*ProductBlock
}

// Message is a fully decoded GRIB2 message: the identification section
// plus every grid group the message carries, supporting the repeated
// 3-(4-5-6-7)+ structure a message may contain.
type Message struct {
	Indication     *section.Header0
	Identification *section.Header1
	LocalUse       []byte
	Grids          []*GridGroup
}

// Decoder reads a sequence of GRIB2 messages from an underlying stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a Decoder reading messages from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads and fully parses the next message, building handlers on top
// of ReadMessage that populate a Message. It returns io.EOF once the
// stream is cleanly exhausted.
func (d *Decoder) Decode() (*Message, error) {
	msg := &Message{}
	var currentGrid *GridGroup
	var currentProduct *ProductBlock

	handlers := &Handlers{
		HandleIndication: func(h *section.Header0) error {
			msg.Indication = h
			return nil
		},
		HandleIdentification: func(h *section.Header1, r io.Reader) error {
			msg.Identification = h
			return nil
		},
		HandleLocalUse: func(h *section.Header2, r io.Reader) error {
			raw, err := readAll(r, int(h.BodyLen()))
			if err != nil {
				return err
			}
			msg.LocalUse = raw
			return nil
		},
		HandleGrid: func(h *section.Header3, r io.Reader) error {
			grid, err := template.ReadGrid(h.TemplateNumber, internal.NewReader(r))
			if err != nil {
				return err
			}
			currentGrid = &GridGroup{GridTemplateNumber: h.TemplateNumber, Grid: grid}
			msg.Grids = append(msg.Grids, currentGrid)
			return nil
		},
		HandleProduct: func(h *section.Header4, r io.Reader) error {
			product, err := template.ReadProduct(h.ProductTemplateNumber, internal.NewReader(r))
			if err != nil {
				return err
			}
			currentProduct = &ProductBlock{ProductTemplateNumber: h.ProductTemplateNumber, Product: product}
			currentGrid.Products = append(currentGrid.Products, currentProduct)
			return nil
		},
		HandleDataRep: func(h *section.Header5, r io.Reader) error {
			rep, err := template.ReadDataRep(h.TemplateNumber, internal.NewReader(r))
			if err != nil {
				return err
			}
			currentProduct.DataRepTemplateNumber = h.TemplateNumber
			currentProduct.DataRep = rep
			currentProduct.NumberOfValues = h.NumberOfValues
			return nil
		},
		HandleBitmap: func(h *section.Header6, r io.Reader) error {
			if h.BitmapIndicator == 254 {
				return errors.New("bitmap section: indicator 254 (previously defined bitmap) is not supported")
			}
			if h.BitmapIndicator != 0 {
				return nil
			}
			numPoints := gridNumDataPoints(currentGrid)
			raw, err := readAll(r, int(h.BodyLen()))
			if err != nil {
				return err
			}
			bitmap, err := section.DecodeBitmap(raw, numPoints)
			if err != nil {
				return err
			}
			currentProduct.Bitmap = bitmap
			return nil
		},
		HandleData: func(h *section.Header7, r io.Reader) error {
			samples, err := decodeData(currentProduct, r, h.BodyLen())
			if err != nil {
				return err
			}
			currentProduct.Samples = samples
			return nil
		},
	}

	result, err := ReadMessage(d.r, handlers)
	if err != nil {
		return nil, err
	}
	if result == NoMoreMessages {
		return nil, io.EOF
	}
	return msg, nil
}

// All reads every remaining message from the stream.
func (d *Decoder) All() ([]*Message, error) {
	var messages []*Message
	for {
		msg, err := d.Decode()
		if err == io.EOF {
			return messages, nil
		}
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
}

func readAll(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func gridNumDataPoints(g *GridGroup) uint32 {
	switch grid := g.Grid.(type) {
	case *template.Grid3_0:
		return grid.Ni * grid.Nj
	default:
		return 0
	}
}

// decodeData selects the Template 7 unpacker that matches the product's
// data representation template and runs it over the Data Section body.
func decodeData(p *ProductBlock, r io.Reader, bodyLen uint32) ([]int32, error) {
	switch p.DataRepTemplateNumber {
	case 0:
		tmpl, ok := p.DataRep.(*template.DataRep5_0)
		if !ok {
			return nil, errors.New("data section: data representation mismatch for template 7.0")
		}
		return data.ReadData7_0(r, p.NumberOfValues, tmpl)
	case 3:
		tmpl, ok := p.DataRep.(*template.DataRep5_3)
		if !ok {
			return nil, errors.New("data section: data representation mismatch for template 7.3")
		}
		return data.ReadData7_3(r, tmpl)
	case 200:
		tmpl, ok := p.DataRep.(*template.DataRep5_200)
		if !ok {
			return nil, errors.New("data section: data representation mismatch for template 7.200")
		}
		return data.ReadData7_200(r, bodyLen, tmpl)
	default:
		return nil, errors.Errorf("data section: no data unpacker for data representation template %d", p.DataRepTemplateNumber)
	}
}
