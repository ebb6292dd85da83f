package section

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// endMarkerBits is "7777" read as a big-endian uint32, the same four bytes
// every other section's length prefix would occupy.
var endMarkerBits = binary.BigEndian.Uint32([]byte(EndMarker))

// ReadPreamble reads the generic 5-byte preamble shared by sections 1-7: a
// 4-byte length followed by a 1-byte section number. When allowEnd is true
// and the 4 length bytes are instead the ASCII end-marker "7777", it
// synthesizes the pseudo-header {length: 4, number: 8} instead of reading a
// fifth byte, matching the wire format (the end marker has no length/number
// fields of its own).
func ReadPreamble(r *internal.Reader, allowEnd bool) (length uint32, number uint8, err error) {
	buf, err := r.Bytes(4)
	if err != nil {
		return 0, 0, errors.Wrap(err, "section preamble: length")
	}
	raw := binary.BigEndian.Uint32(buf)
	if allowEnd && raw == endMarkerBits {
		return 4, 8, nil
	}
	n, err := r.Uint8()
	if err != nil {
		return 0, 0, errors.Wrap(err, "section preamble: number")
	}
	return raw, n, nil
}

// ensureNumber returns an InvalidData-flavored error if got != want.
func ensureNumber(want, got uint8) error {
	if got != want {
		return errors.Errorf("expected section %d, got section %d", want, got)
	}
	return nil
}
