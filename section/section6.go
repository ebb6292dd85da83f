package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// Header6 is the Bitmap Section (Section 6).
type Header6 struct {
	Length          uint32
	BitmapIndicator uint8
}

// BodyLen is the number of packed bitmap bytes following this header,
// zero unless BitmapIndicator == 0.
func (h *Header6) BodyLen() uint32 {
	return h.Length - 6
}

// ReadHeader6 parses Section 6's header.
func ReadHeader6(r *internal.Reader, length uint32, number uint8) (*Header6, error) {
	if err := ensureNumber(6, number); err != nil {
		return nil, err
	}
	indicator, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 6: bitmap indicator")
	}
	return &Header6{Length: length, BitmapIndicator: indicator}, nil
}

// DecodeBitmap unpacks a Section 6 body of bitmapIndicator 0 into one bool
// per grid point, most-significant bit first: true means the corresponding
// grid point carries a data value, false means it is skipped.
func DecodeBitmap(body []byte, numGridPoints uint32) ([]bool, error) {
	expected := (numGridPoints + 7) / 8
	if uint32(len(body)) < expected {
		return nil, errors.Errorf("bitmap: need %d bytes for %d grid points, got %d", expected, numGridPoints, len(body))
	}

	bitmap := make([]bool, numGridPoints)
	bitIdx := uint32(0)
	for byteIdx := 0; byteIdx < len(body) && bitIdx < numGridPoints; byteIdx++ {
		b := body[byteIdx]
		for bit := 7; bit >= 0 && bitIdx < numGridPoints; bit-- {
			bitmap[bitIdx] = (b & (1 << uint(bit))) != 0
			bitIdx++
		}
	}
	return bitmap, nil
}
