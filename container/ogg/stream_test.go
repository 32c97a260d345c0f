package ogg

import (
	"bytes"
	"testing"
)

// drainStream reads all pending page bytes out of the stream.
func drainStream(t *testing.T, s *Stream) []byte {
	t.Helper()
	var out []byte
	buf := make([]byte, 1024)
	for {
		n := s.PageOut(buf)
		if n == 0 {
			return out
		}
		out = append(out, buf[:n]...)
	}
}

// parseAllPages splits a byte stream into pages.
func parseAllPages(t *testing.T, data []byte) []*Page {
	t.Helper()
	var pages []*Page
	for len(data) > 0 {
		page, consumed, err := ParsePage(data)
		if err != nil {
			t.Fatalf("ParsePage: %v (remaining %d bytes)", err, len(data))
		}
		pages = append(pages, page)
		data = data[consumed:]
	}
	return pages
}

// TestStreamBOSPage verifies the first packet of a logical stream is forced
// out immediately on its own BOS page.
func TestStreamBOSPage(t *testing.T) {
	s := NewStream(0x13572468)
	s.PacketIn(Packet{Data: []byte("ident header"), GranulePos: 0})

	if s.PendingBytes() == 0 {
		t.Fatal("BOS page not emitted immediately")
	}

	pages := parseAllPages(t, drainStream(t, s))
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	page := pages[0]
	if !page.IsBOS() {
		t.Error("first page missing BOS flag")
	}
	if page.PageSequence != 0 {
		t.Errorf("PageSequence = %d, want 0", page.PageSequence)
	}
	if page.SerialNumber != 0x13572468 {
		t.Errorf("SerialNumber = 0x%08x, want 0x13572468", page.SerialNumber)
	}
	packets := page.Packets()
	if len(packets) != 1 || !bytes.Equal(packets[0], []byte("ident header")) {
		t.Errorf("BOS page packets = %q, want exactly the first packet", packets)
	}
	if page.GranulePos != 0 {
		t.Errorf("header page GranulePos = %d, want 0", page.GranulePos)
	}
}

// TestStreamOpportunisticFill verifies small packets accumulate until a
// page is full or a flush forces them out.
func TestStreamOpportunisticFill(t *testing.T) {
	s := NewStream(1)
	s.PacketIn(Packet{Data: []byte("bos")})
	drainStream(t, s)

	// Small packets should not produce a page on their own.
	s.PacketIn(Packet{Data: []byte("aaaa"), GranulePos: 100})
	s.PacketIn(Packet{Data: []byte("bbbb"), GranulePos: 200})
	if s.PendingBytes() != 0 {
		t.Fatalf("premature page emission with %d pending bytes", s.PendingBytes())
	}

	s.Flush()
	pages := parseAllPages(t, drainStream(t, s))
	if len(pages) != 1 {
		t.Fatalf("got %d pages after flush, want 1", len(pages))
	}
	page := pages[0]
	packets := page.Packets()
	if len(packets) != 2 {
		t.Fatalf("got %d packets, want 2", len(packets))
	}
	// Page granule is that of the last packet completed on it.
	if page.GranulePos != 200 {
		t.Errorf("GranulePos = %d, want 200", page.GranulePos)
	}
	if page.PageSequence != 1 {
		t.Errorf("PageSequence = %d, want 1", page.PageSequence)
	}
}

// TestStreamFlushNoop verifies flushing with nothing queued emits no page
// and does not advance the page sequence.
func TestStreamFlushNoop(t *testing.T) {
	s := NewStream(1)
	s.PacketIn(Packet{Data: []byte("bos")})
	s.Flush()
	drainStream(t, s)

	seq := s.PageSequence()
	s.Flush()
	if s.PendingBytes() != 0 {
		t.Error("flush with nothing queued emitted page bytes")
	}
	if s.PageSequence() != seq {
		t.Errorf("page sequence advanced from %d to %d on empty flush", seq, s.PageSequence())
	}
}

// TestStreamLargePacket verifies a packet larger than one page spans pages
// with continuation flags and reassembles intact.
func TestStreamLargePacket(t *testing.T) {
	big := make([]byte, 100000)
	for i := range big {
		big[i] = byte(i * 7)
	}

	s := NewStream(9)
	s.PacketIn(Packet{Data: []byte("bos")})
	drainStream(t, s)

	s.PacketIn(Packet{Data: big, GranulePos: 4242})
	s.Flush()

	pages := parseAllPages(t, drainStream(t, s))
	if len(pages) < 2 {
		t.Fatalf("large packet produced %d pages, want several", len(pages))
	}

	var assembled []byte
	for i, page := range pages {
		if i > 0 && !page.IsContinuation() {
			t.Errorf("page %d missing continuation flag", i)
		}
		if i < len(pages)-1 {
			if page.GranulePos != NoGranule {
				t.Errorf("page %d GranulePos = %d, want %d (no packet ends)", i, page.GranulePos, NoGranule)
			}
		} else if page.GranulePos != 4242 {
			t.Errorf("final page GranulePos = %d, want 4242", page.GranulePos)
		}
		assembled = append(assembled, page.Payload...)
	}
	if !bytes.Equal(assembled, big) {
		t.Fatalf("reassembled packet differs: got %d bytes, want %d", len(assembled), len(big))
	}

	// Page sequence numbers are consecutive.
	for i, page := range pages {
		want := uint32(i + 1) // page 0 was the BOS page
		if page.PageSequence != want {
			t.Errorf("page %d sequence = %d, want %d", i, page.PageSequence, want)
		}
	}
}

// TestStreamEOSFlag verifies the EOS packet marks the page completing it.
func TestStreamEOSFlag(t *testing.T) {
	s := NewStream(5)
	s.PacketIn(Packet{Data: []byte("bos")})
	s.PacketIn(Packet{Data: []byte("last"), GranulePos: 999, EOS: true})
	s.Flush()

	pages := parseAllPages(t, drainStream(t, s))
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0].IsEOS() {
		t.Error("BOS page wrongly carries EOS flag")
	}
	if !pages[1].IsEOS() {
		t.Error("final page missing EOS flag")
	}
}

// TestStreamReset verifies a reset begins a fresh logical stream and
// discards undrained output.
func TestStreamReset(t *testing.T) {
	s := NewStream(111)
	s.PacketIn(Packet{Data: []byte("old stream")})
	s.Flush()
	// Deliberately do not drain: reset must discard pending bytes.

	s.Reset(222)
	if s.PendingBytes() != 0 {
		t.Error("reset did not discard pending page bytes")
	}
	if s.Serial() != 222 {
		t.Errorf("Serial = %d, want 222", s.Serial())
	}
	if s.PageSequence() != 0 {
		t.Errorf("PageSequence = %d, want 0 after reset", s.PageSequence())
	}

	s.PacketIn(Packet{Data: []byte("new stream")})
	pages := parseAllPages(t, drainStream(t, s))
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if !pages[0].IsBOS() {
		t.Error("first page of restarted stream missing BOS flag")
	}
	if pages[0].SerialNumber != 222 {
		t.Errorf("SerialNumber = %d, want 222", pages[0].SerialNumber)
	}
}

// TestStreamPageOutMonotonic verifies repeated small reads drain all
// pending bytes and then return 0.
func TestStreamPageOutMonotonic(t *testing.T) {
	s := NewStream(3)
	s.PacketIn(Packet{Data: make([]byte, 2000)})
	s.Flush()

	total := s.PendingBytes()
	drained := 0
	buf := make([]byte, 17)
	for {
		n := s.PageOut(buf)
		if n == 0 {
			break
		}
		if n > len(buf) {
			t.Fatalf("PageOut returned %d > buffer size %d", n, len(buf))
		}
		drained += n
	}
	if drained != total {
		t.Errorf("drained %d bytes, want %d", drained, total)
	}
	if s.PageOut(buf) != 0 {
		t.Error("PageOut after drain returned data")
	}
}
