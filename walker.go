package squall

import (
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
	"github.com/mmp/squall/section"
)

// Result reports the outcome of a single ReadMessage call.
type Result int

const (
	// MessageRead indicates a complete message was consumed successfully.
	MessageRead Result = iota
	// NoMoreMessages indicates clean end-of-stream before any message
	// bytes were read.
	NoMoreMessages
)

// Handlers is the set of per-section callbacks ReadMessage invokes as it
// walks a message. Each defaults to a no-op; a handler that returns without
// consuming the whole body is fine, ReadMessage drains any residue.
type Handlers struct {
	HandleIndication     func(h *section.Header0) error
	HandleIdentification func(h *section.Header1, r io.Reader) error
	HandleLocalUse       func(h *section.Header2, r io.Reader) error
	HandleGrid           func(h *section.Header3, r io.Reader) error
	HandleProduct        func(h *section.Header4, r io.Reader) error
	HandleDataRep        func(h *section.Header5, r io.Reader) error
	HandleBitmap         func(h *section.Header6, r io.Reader) error
	HandleData           func(h *section.Header7, r io.Reader) error
}

func (h *Handlers) indication(hdr *section.Header0) error {
	if h == nil || h.HandleIndication == nil {
		return nil
	}
	return h.HandleIndication(hdr)
}

func (h *Handlers) identification(hdr *section.Header1, r io.Reader) error {
	if h == nil || h.HandleIdentification == nil {
		return nil
	}
	return h.HandleIdentification(hdr, r)
}

func (h *Handlers) localUse(hdr *section.Header2, r io.Reader) error {
	if h == nil || h.HandleLocalUse == nil {
		return nil
	}
	return h.HandleLocalUse(hdr, r)
}

func (h *Handlers) grid(hdr *section.Header3, r io.Reader) error {
	if h == nil || h.HandleGrid == nil {
		return nil
	}
	return h.HandleGrid(hdr, r)
}

func (h *Handlers) product(hdr *section.Header4, r io.Reader) error {
	if h == nil || h.HandleProduct == nil {
		return nil
	}
	return h.HandleProduct(hdr, r)
}

func (h *Handlers) dataRep(hdr *section.Header5, r io.Reader) error {
	if h == nil || h.HandleDataRep == nil {
		return nil
	}
	return h.HandleDataRep(hdr, r)
}

func (h *Handlers) bitmap(hdr *section.Header6, r io.Reader) error {
	if h == nil || h.HandleBitmap == nil {
		return nil
	}
	return h.HandleBitmap(hdr, r)
}

func (h *Handlers) data(hdr *section.Header7, r io.Reader) error {
	if h == nil || h.HandleData == nil {
		return nil
	}
	return h.HandleData(hdr, r)
}

// newBoundedReader wraps src in a reader limited to n bytes, so a handler
// that reads only a prefix of a section body leaves the rest for
// ReadMessage to drain.
func newBoundedReader(src io.Reader, n uint32) (*io.LimitedReader, *io.LimitedReader) {
	lim := &io.LimitedReader{R: src, N: int64(n)}
	return lim, lim
}

func drain(lim *io.LimitedReader) error {
	if lim.N <= 0 {
		return nil
	}
	_, err := io.CopyN(io.Discard, lim.R, lim.N)
	if err != nil {
		return errors.Wrap(err, "draining section residue")
	}
	return nil
}

// ReadMessage consumes one complete GRIB2 message from src, invoking the
// supplied handlers as each section is encountered. Clean end-of-stream
// before any bytes are read yields (NoMoreMessages, nil); anything else
// short of a fully parsed message yields an error.
func ReadMessage(src io.Reader, handlers *Handlers) (Result, error) {
	magic := make([]byte, 4)
	_, err := io.ReadFull(src, magic)
	if err == io.EOF {
		return NoMoreMessages, nil
	}
	if err != nil {
		return 0, newError(IO, -1, 0, "truncated indicator section", err)
	}
	if string(magic) != section.Magic {
		return 0, newError(InvalidData, 0, 0, "bad magic, expected GRIB", nil)
	}

	r := internal.NewReader(src)
	headerKind := func(err error) Kind {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return IO
		}
		return InvalidData
	}

	hdr0, err := section.ReadHeader0Body(r)
	if err != nil {
		return 0, newError(headerKind(err), 0, r.Offset(), "reading section 0", err)
	}
	glog.V(2).Infof("squall: section 0: discipline=%d edition=%d total_length=%d", hdr0.Discipline, hdr0.Edition, hdr0.TotalLength)
	if err := handlers.indication(hdr0); err != nil {
		return 0, err
	}

	length, number, err := section.ReadPreamble(r, false)
	if err != nil {
		return 0, newError(IO, 1, r.Offset(), "reading section 1 preamble", err)
	}
	hdr1, err := section.ReadHeader1(r, length, number)
	if err != nil {
		return 0, newError(headerKind(err), 1, r.Offset(), "reading section 1", err)
	}
	{
		bounded, lim := newBoundedReader(src, hdr1.BodyLen())
		if err := handlers.identification(hdr1, bounded); err != nil {
			return 0, err
		}
		if err := drain(lim); err != nil {
			return 0, newError(IO, 1, r.Offset(), "draining section 1", err)
		}
	}

	length, number, err = section.ReadPreamble(r, false)
	if err != nil {
		return 0, newError(IO, -1, r.Offset(), "reading next section preamble", err)
	}

	for {
		if number == 2 {
			hdr2, err := section.ReadHeader2(r, length, number)
			if err != nil {
				return 0, newError(InvalidData, 2, r.Offset(), "reading section 2", err)
			}
			bounded, lim := newBoundedReader(src, hdr2.BodyLen())
			if err := handlers.localUse(hdr2, bounded); err != nil {
				return 0, err
			}
			if err := drain(lim); err != nil {
				return 0, newError(IO, 2, r.Offset(), "draining section 2", err)
			}
			length, number, err = section.ReadPreamble(r, false)
			if err != nil {
				return 0, newError(IO, -1, r.Offset(), "reading next section preamble", err)
			}
		}

		hdr3, err := section.ReadHeader3(r, length, number)
		if err != nil {
			return 0, newError(headerKind(err), 3, r.Offset(), "reading section 3", err)
		}
		{
			bounded, lim := newBoundedReader(src, hdr3.BodyLen())
			if err := handlers.grid(hdr3, bounded); err != nil {
				return 0, err
			}
			if err := drain(lim); err != nil {
				return 0, newError(IO, 3, r.Offset(), "draining section 3", err)
			}
		}

		length, number, err = section.ReadPreamble(r, false)
		if err != nil {
			return 0, newError(IO, -1, r.Offset(), "reading next section preamble", err)
		}

		for {
			hdr4, err := section.ReadHeader4(r, length, number)
			if err != nil {
				return 0, newError(headerKind(err), 4, r.Offset(), "reading section 4", err)
			}
			bounded, lim := newBoundedReader(src, hdr4.BodyLen())
			if err := handlers.product(hdr4, bounded); err != nil {
				return 0, err
			}
			if err := drain(lim); err != nil {
				return 0, newError(IO, 4, r.Offset(), "draining section 4", err)
			}

			length, number, err = section.ReadPreamble(r, false)
			if err != nil {
				return 0, newError(IO, -1, r.Offset(), "reading section 5 preamble", err)
			}
			hdr5, err := section.ReadHeader5(r, length, number)
			if err != nil {
				return 0, newError(headerKind(err), 5, r.Offset(), "reading section 5", err)
			}
			bounded, lim = newBoundedReader(src, hdr5.BodyLen())
			if err := handlers.dataRep(hdr5, bounded); err != nil {
				return 0, err
			}
			if err := drain(lim); err != nil {
				return 0, newError(IO, 5, r.Offset(), "draining section 5", err)
			}

			length, number, err = section.ReadPreamble(r, false)
			if err != nil {
				return 0, newError(IO, -1, r.Offset(), "reading section 6 preamble", err)
			}
			hdr6, err := section.ReadHeader6(r, length, number)
			if err != nil {
				return 0, newError(headerKind(err), 6, r.Offset(), "reading section 6", err)
			}
			bounded, lim = newBoundedReader(src, hdr6.BodyLen())
			if err := handlers.bitmap(hdr6, bounded); err != nil {
				return 0, err
			}
			if err := drain(lim); err != nil {
				return 0, newError(IO, 6, r.Offset(), "draining section 6", err)
			}

			length, number, err = section.ReadPreamble(r, false)
			if err != nil {
				return 0, newError(IO, -1, r.Offset(), "reading section 7 preamble", err)
			}
			hdr7, err := section.ReadHeader7(r, length, number)
			if err != nil {
				return 0, newError(InvalidData, 7, r.Offset(), "reading section 7", err)
			}
			bounded, lim = newBoundedReader(src, hdr7.BodyLen())
			if err := handlers.data(hdr7, bounded); err != nil {
				return 0, err
			}
			if err := drain(lim); err != nil {
				return 0, newError(IO, 7, r.Offset(), "draining section 7", err)
			}

			length, number, err = section.ReadPreamble(r, true)
			if err != nil {
				return 0, newError(IO, -1, r.Offset(), "reading next section preamble", err)
			}

			switch number {
			case 4:
				continue
			case 2, 3:
				goto outer
			case 8:
				glog.V(2).Infof("squall: message complete after %d byte(s)", r.Offset())
				return MessageRead, nil
			default:
				return 0, newError(InvalidData, int(number), r.Offset(), "unexpected section number", nil)
			}
		}
	outer:
	}
}
