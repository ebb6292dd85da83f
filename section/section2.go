package section

import "github.com/mmp/squall/internal"

// Header2 is the Local Use Section (Section 2). Its body is opaque,
// center-specific bytes that the core never interprets.
type Header2 struct {
	Length uint32
}

// BodyLen is the number of opaque local-use bytes following this header.
func (h *Header2) BodyLen() uint32 {
	return h.Length - 5
}

// ReadHeader2 parses Section 2's header, which carries no fields of its
// own beyond the generic preamble.
func ReadHeader2(_ *internal.Reader, length uint32, number uint8) (*Header2, error) {
	if err := ensureNumber(2, number); err != nil {
		return nil, err
	}
	return &Header2{Length: length}, nil
}
