package ogg

import (
	"io"
)

// readerBufferSize is the initial size of the internal read buffer.
const readerBufferSize = 64 * 1024

// Reader extracts packets from a physical Ogg bitstream.
//
// It handles packets spanning pages and chained logical streams: when a
// new BOS page with a different serial number appears, the Reader adopts
// it and keeps delivering packets. Use Serial to observe which logical
// stream the most recent packet belongs to.
type Reader struct {
	r io.Reader

	buf   []byte
	start int
	end   int

	serial     uint32
	haveSerial bool
	granule    int64
	eos        bool

	partial []byte         // packet data continued from a previous page
	queue   []readerPacket // complete packets not yet delivered
}

// readerPacket is a complete packet with the page state it was read under.
type readerPacket struct {
	data    []byte
	granule int64
	serial  uint32
	eos     bool
}

// NewReader creates a Reader over a physical Ogg bitstream.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:   r,
		buf: make([]byte, readerBufferSize),
	}
}

// ReadPacket returns the next complete packet from the stream.
// Returns io.EOF when the underlying reader is exhausted and no complete
// packet remains.
func (r *Reader) ReadPacket() ([]byte, error) {
	for len(r.queue) == 0 {
		page, err := r.readPage()
		if err != nil {
			return nil, err
		}
		r.ingestPage(page)
	}

	pkt := r.queue[0]
	r.queue = r.queue[1:]
	r.serial = pkt.serial
	r.granule = pkt.granule
	r.eos = pkt.eos
	return pkt.data, nil
}

// Serial returns the serial number of the logical stream the most recently
// returned packet belongs to.
func (r *Reader) Serial() uint32 {
	return r.serial
}

// GranulePos returns the granule position of the page that completed the
// most recently returned packet, or NoGranule if none ended there.
func (r *Reader) GranulePos() int64 {
	return r.granule
}

// EOS reports whether the most recently returned packet came from a page
// carrying the EOS flag.
func (r *Reader) EOS() bool {
	return r.eos
}

// ingestPage splits a page into packets and appends the complete ones to
// the delivery queue, tracking continuation across pages.
func (r *Reader) ingestPage(page *Page) {
	// A new logical stream abandons any half-read packet.
	if !r.haveSerial || page.SerialNumber != r.serial {
		if !page.IsBOS() && r.haveSerial {
			// Foreign non-BOS page, e.g. an interleaved stream we do
			// not follow. Skip it.
			return
		}
		r.haveSerial = true
		r.serial = page.SerialNumber
		r.partial = nil
	}

	payload := page.Payload
	offset := 0
	if page.IsContinuation() && r.partial == nil {
		// Continuation without the beginning; drop the fragment. If the
		// whole page belongs to the unrecoverable packet, skip the page.
		lengths := page.PacketLengths()
		if len(lengths) == 0 {
			return
		}
		offset = lengths[0]
		r.appendComplete(page, payload, offset, lengths[1:])
		return
	}
	if !page.IsContinuation() {
		r.partial = nil
	}

	lengths := page.PacketLengths()
	if r.partial != nil && len(lengths) > 0 {
		// First complete packet finishes the carried-over fragment.
		data := append(r.partial, payload[:lengths[0]]...)
		r.partial = nil
		offset = lengths[0]
		r.queue = append(r.queue, readerPacket{
			data:    data,
			granule: page.GranulePos,
			serial:  page.SerialNumber,
			eos:     page.IsEOS(),
		})
		lengths = lengths[1:]
	}
	r.appendComplete(page, payload, offset, lengths)
}

// appendComplete queues the complete packets in payload[offset:] described
// by lengths and stashes a trailing unterminated fragment, if any.
func (r *Reader) appendComplete(page *Page, payload []byte, offset int, lengths []int) {
	for _, n := range lengths {
		if offset+n > len(payload) {
			break
		}
		data := append([]byte(nil), payload[offset:offset+n]...)
		offset += n
		r.queue = append(r.queue, readerPacket{
			data:    data,
			granule: page.GranulePos,
			serial:  page.SerialNumber,
			eos:     page.IsEOS(),
		})
	}
	if page.ContinuedTail() && offset < len(payload) {
		r.partial = append(r.partial, payload[offset:]...)
	}
}

// readPage reads and validates the next page from the underlying reader.
func (r *Reader) readPage() (*Page, error) {
	for {
		if r.end > r.start {
			page, consumed, err := ParsePage(r.buf[r.start:r.end])
			if err == nil {
				r.start += consumed
				return page, nil
			}
			if err == ErrBadCRC {
				return nil, err
			}
			// ErrInvalidPage here usually means a truncated page; fall
			// through and read more data.
		}

		// Compact the buffer.
		if r.start > 0 {
			copy(r.buf, r.buf[r.start:r.end])
			r.end -= r.start
			r.start = 0
		}

		// Grow if a page is larger than the buffer.
		if r.end == len(r.buf) {
			grown := make([]byte, len(r.buf)*2)
			copy(grown, r.buf[:r.end])
			r.buf = grown
		}

		n, err := r.r.Read(r.buf[r.end:])
		if n > 0 {
			r.end += n
			continue
		}
		if err != nil {
			if err == io.EOF && r.end > r.start {
				return nil, ErrUnexpectedEOS
			}
			return nil, err
		}
	}
}
