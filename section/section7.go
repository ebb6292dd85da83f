package section

import "github.com/mmp/squall/internal"

// Header7 is the Data Section (Section 7). Its body is handed unparsed to
// the data unpacker selected by Section 5's template number.
type Header7 struct {
	Length uint32
}

// BodyLen is the number of packed data bytes following this header.
func (h *Header7) BodyLen() uint32 {
	return h.Length - 5
}

// ReadHeader7 parses Section 7's header, which carries no fields of its own
// beyond the generic preamble.
func ReadHeader7(_ *internal.Reader, length uint32, number uint8) (*Header7, error) {
	if err := ensureNumber(7, number); err != nil {
		return nil, err
	}
	return &Header7{Length: length}, nil
}
