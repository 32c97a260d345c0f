package ogg

// stream.go implements the packet-to-page framing state for one logical
// Ogg bitstream, modeled on libogg's ogg_stream_state. Packets are pushed
// with PacketIn; serialized pages accumulate internally and are drained
// with PageOut. Page emission is opportunistic: a page is produced as soon
// as it would be full, or on demand via Flush.

// targetPageBytes is the payload size at which a page is considered full
// and emitted without waiting for more packets. This matches the nominal
// page fill used by libogg.
const targetPageBytes = 4096

// Packet is one unit of compressed codec output to be framed into pages.
type Packet struct {
	// Data is the raw packet payload.
	Data []byte

	// GranulePos is the absolute granule position at the end of this
	// packet (for Vorbis: the PCM sample position). It becomes the
	// granule position of the page on which the packet ends.
	GranulePos int64

	// EOS marks the final packet of the logical stream. The page that
	// completes it carries the EOS flag.
	EOS bool
}

// Stream frames packets of one logical bitstream into Ogg pages.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	serial  uint32
	pageSeq uint32
	bos     bool // no page emitted yet for this logical stream

	queue   []Packet // packets not yet fully placed on pages
	partial int      // bytes of queue[0] already emitted on earlier pages

	pending []byte // serialized pages awaiting PageOut
}

// NewStream creates a Stream and begins a logical bitstream with the given
// serial number.
func NewStream(serial uint32) *Stream {
	s := &Stream{}
	s.Reset(serial)
	return s
}

// Reset begins a new logical bitstream with the given serial number.
// Any queued packets and any page bytes not yet drained with PageOut are
// discarded. The next page emitted carries the BOS flag and page sequence
// number zero.
func (s *Stream) Reset(serial uint32) {
	s.serial = serial
	s.pageSeq = 0
	s.bos = true
	s.queue = s.queue[:0]
	s.partial = 0
	s.pending = nil
}

// PacketIn appends a packet to the current logical stream. The packet data
// is copied; the caller may reuse the backing slice. Zero or more pages may
// be completed internally as a side effect.
//
// The first packet after NewStream or Reset is emitted immediately on its
// own BOS page, as the Vorbis mapping requires for the identification
// header.
func (s *Stream) PacketIn(p Packet) {
	p.Data = append([]byte(nil), p.Data...)
	s.queue = append(s.queue, p)

	if s.bos {
		s.emitPage(true)
	}
	for s.emitPage(false) {
	}
}

// Flush forces all queued packet data out as pages immediately, regardless
// of fill level. With nothing queued it is a no-op: no page is emitted and
// the page sequence number does not advance.
func (s *Stream) Flush() {
	for s.emitPage(true) {
	}
}

// PageOut copies as many ready page bytes as fit into buf and returns the
// number of bytes written. It returns 0 when no page bytes are pending.
// PageOut never blocks and has no effect on packet framing.
func (s *Stream) PageOut(buf []byte) int {
	n := copy(buf, s.pending)
	s.pending = s.pending[n:]
	if len(s.pending) == 0 {
		s.pending = nil
	}
	return n
}

// PendingBytes returns the number of serialized page bytes ready for PageOut.
func (s *Stream) PendingBytes() int {
	return len(s.pending)
}

// Serial returns the serial number of the current logical stream.
func (s *Stream) Serial() uint32 {
	return s.serial
}

// PageSequence returns the sequence number the next emitted page will carry.
func (s *Stream) PageSequence() uint32 {
	return s.pageSeq
}

// End releases the stream's buffers. The Stream must not be used afterwards
// except through Reset.
func (s *Stream) End() {
	s.queue = nil
	s.pending = nil
	s.partial = 0
}

// emitPage builds at most one page from the queued packets and appends its
// serialized bytes to the pending buffer. Unless force is set, a page is
// only emitted when full: 255 segment table entries used, or at least
// targetPageBytes of payload. Returns whether a page was emitted.
//
// When emitting the first page of a logical stream (BOS), exactly one
// packet is placed on the page, per the Vorbis-over-Ogg mapping.
func (s *Stream) emitPage(force bool) bool {
	if len(s.queue) == 0 {
		return false
	}

	var segs, body []byte
	granule := NoGranule
	flags := byte(0)
	if s.bos {
		flags |= PageFlagBOS
	}
	if s.partial > 0 {
		flags |= PageFlagContinuation
	}

	consumed := 0       // packets fully placed on this page
	offset := s.partial // continuation offset into the first packet
	newPartial := 0

	for i := 0; i < len(s.queue); i++ {
		pkt := s.queue[i]
		remaining := len(pkt.Data) - offset
		need := remaining/255 + 1 // lacing entries incl. terminator
		avail := maxSegments - len(segs)

		if need > avail {
			// Split: fill the rest of the segment table with 255s and
			// carry the tail over to the next page.
			if avail == 0 {
				break
			}
			take := avail * 255
			for j := 0; j < avail; j++ {
				segs = append(segs, 255)
			}
			body = append(body, pkt.Data[offset:offset+take]...)
			newPartial = offset + take
			break
		}

		segs = appendLacing(segs, remaining)
		body = append(body, pkt.Data[offset:]...)
		granule = pkt.GranulePos
		if pkt.EOS {
			flags |= PageFlagEOS
		}
		consumed++
		offset = 0

		if s.bos || len(body) >= targetPageBytes {
			break
		}
	}

	full := len(segs) == maxSegments || len(body) >= targetPageBytes
	if !force && !full {
		return false
	}
	if len(segs) == 0 {
		return false
	}

	page := Page{
		HeaderType:   flags,
		GranulePos:   granule,
		SerialNumber: s.serial,
		PageSequence: s.pageSeq,
		Segments:     segs,
		Payload:      body,
	}
	s.pending = append(s.pending, page.Encode()...)
	s.pageSeq++
	s.bos = false
	s.queue = s.queue[consumed:]
	s.partial = newPartial
	return true
}
