package section

// Header8 is the synthetic End Section (Section 8): the literal 4-byte
// marker "7777" with no length prefix or section number octet of its own.
// ReadPreamble recognizes the marker and synthesizes this pseudo-header.
type Header8 struct{}
