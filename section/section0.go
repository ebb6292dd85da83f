// Package section parses GRIB2 section headers off a live io.Reader,
// computing each section's body length from its length-prefix fields per
// the formulas in WMO FM-92. It does not interpret template-specific
// bodies; that is the job of the template registry.
package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// Magic is the 4-byte ASCII literal every GRIB2 message begins with.
const Magic = "GRIB"

// EndMarker is the 4-byte ASCII sentinel that terminates a message in
// place of a numbered section.
const EndMarker = "7777"

// Header0 is the Indicator Section (Section 0): a fixed 16 bytes with no
// length prefix and no section-number byte.
type Header0 struct {
	Discipline  uint8  // Table 0.0
	Edition     uint8  // must be 2
	TotalLength uint64 // total message length in octets, including Section 0
}

// ReadHeader0Body parses the 12 bytes of Section 0 that follow the 4-byte
// "GRIB" magic. The caller consumes the magic itself, since distinguishing
// a clean end-of-stream from a truncated indicator section requires seeing
// those bytes (or their absence) before this function is reached.
func ReadHeader0Body(r *internal.Reader) (*Header0, error) {
	if err := r.Skip(2); err != nil { // reserved
		return nil, errors.Wrap(err, "section 0: reserved bytes")
	}
	discipline, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 0: discipline")
	}
	edition, err := r.Uint8()
	if err != nil {
		return nil, errors.Wrap(err, "section 0: edition")
	}
	if edition != 2 {
		return nil, errors.Errorf("section 0: edition number must be 2, got %d", edition)
	}
	totalLength, err := r.Uint64()
	if err != nil {
		return nil, errors.Wrap(err, "section 0: total length")
	}
	return &Header0{Discipline: discipline, Edition: edition, TotalLength: totalLength}, nil
}
