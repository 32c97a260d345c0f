package ogg

import (
	"encoding/binary"
)

// Page header flag constants.
const (
	// PageFlagContinuation indicates this page contains data from a packet
	// that began on a previous page.
	PageFlagContinuation = 0x01

	// PageFlagBOS (Beginning of Stream) indicates this is the first page
	// of a logical bitstream.
	PageFlagBOS = 0x02

	// PageFlagEOS (End of Stream) indicates this is the last page of a
	// logical bitstream.
	PageFlagEOS = 0x04
)

// Page header size constants.
const (
	// pageHeaderSize is the fixed portion of the page header (before segment table).
	pageHeaderSize = 27

	// maxSegments is the maximum number of entries in a page's segment table.
	maxSegments = 255

	// oggMagic is the capture pattern that identifies an Ogg page.
	oggMagic = "OggS"
)

// NoGranule is the granule position of a page on which no packet ends.
const NoGranule int64 = -1

// Page represents a single Ogg page.
type Page struct {
	// Version is the stream structure version (always 0).
	Version byte

	// HeaderType contains page flags (continuation, BOS, EOS).
	HeaderType byte

	// GranulePos is the granule position. For Vorbis, this is the absolute
	// PCM sample position of the last packet ending on the page, or
	// NoGranule (-1) if no packet ends here.
	GranulePos int64

	// SerialNumber identifies the logical bitstream.
	SerialNumber uint32

	// PageSequence is the page sequence number within the bitstream.
	PageSequence uint32

	// Segments contains the segment table entries.
	// Each entry is the size of a segment (0-255).
	Segments []byte

	// Payload contains the concatenated packet data.
	Payload []byte
}

// appendLacing appends the segment table entries for a packet of the given
// length. Packets larger than 255 bytes span multiple segments (each 255
// bytes except the final segment, which holds the remainder). A length that
// is an exact multiple of 255 is terminated by a zero-length segment.
func appendLacing(segments []byte, packetLen int) []byte {
	for packetLen >= 255 {
		segments = append(segments, 255)
		packetLen -= 255
	}
	return append(segments, byte(packetLen))
}

// ParseSegmentTable extracts packet lengths from a segment table.
// Returns a slice of packet lengths. A segment value of 255 indicates
// the packet continues; a value less than 255 ends the packet.
// A trailing run of 255 segments (a packet continued on the next page)
// is not reported.
func ParseSegmentTable(segments []byte) []int {
	if len(segments) == 0 {
		return nil
	}

	var lengths []int
	currentLen := 0

	for _, seg := range segments {
		currentLen += int(seg)
		if seg < 255 {
			// End of packet
			lengths = append(lengths, currentLen)
			currentLen = 0
		}
	}

	return lengths
}

// IsBOS returns true if this is a Beginning of Stream page.
func (p *Page) IsBOS() bool {
	return p.HeaderType&PageFlagBOS != 0
}

// IsEOS returns true if this is an End of Stream page.
func (p *Page) IsEOS() bool {
	return p.HeaderType&PageFlagEOS != 0
}

// IsContinuation returns true if this page continues a packet from a previous page.
func (p *Page) IsContinuation() bool {
	return p.HeaderType&PageFlagContinuation != 0
}

// PacketLengths extracts complete packet lengths from the segment table.
// This is equivalent to ParseSegmentTable(p.Segments).
func (p *Page) PacketLengths() []int {
	return ParseSegmentTable(p.Segments)
}

// ContinuedTail reports whether the final packet on this page continues on
// the next page, i.e. the last segment table entry is 255.
func (p *Page) ContinuedTail() bool {
	return len(p.Segments) > 0 && p.Segments[len(p.Segments)-1] == 255
}

// Packets extracts the complete packets from the payload. Data belonging
// to a packet that continues on the next page is not included; use
// ContinuedTail to detect it.
func (p *Page) Packets() [][]byte {
	lengths := p.PacketLengths()
	if len(lengths) == 0 {
		return nil
	}

	packets := make([][]byte, len(lengths))
	offset := 0
	for i, length := range lengths {
		if offset+length > len(p.Payload) {
			// Truncated payload
			packets[i] = p.Payload[offset:]
			break
		}
		packets[i] = p.Payload[offset : offset+length]
		offset += length
	}
	return packets
}

// Encode serializes the page to bytes with proper CRC.
// The output format is:
//   - 27-byte header
//   - Segment table
//   - Payload
//
// The CRC is computed over the entire page (with CRC field zeroed).
func (p *Page) Encode() []byte {
	// Calculate total page size.
	headerSize := pageHeaderSize + len(p.Segments)
	totalSize := headerSize + len(p.Payload)
	data := make([]byte, totalSize)

	// Write header.
	copy(data[0:4], oggMagic)
	data[4] = p.Version
	data[5] = p.HeaderType
	binary.LittleEndian.PutUint64(data[6:14], uint64(p.GranulePos))
	binary.LittleEndian.PutUint32(data[14:18], p.SerialNumber)
	binary.LittleEndian.PutUint32(data[18:22], p.PageSequence)
	// CRC at bytes 22-25 will be filled after.
	data[26] = byte(len(p.Segments))

	// Write segment table.
	copy(data[27:], p.Segments)

	// Write payload.
	copy(data[headerSize:], p.Payload)

	// Compute CRC (with CRC field zeroed).
	crc := oggCRC(data)
	binary.LittleEndian.PutUint32(data[22:26], crc)

	return data
}

// ParsePage parses an Ogg page from bytes.
// Returns the parsed page, number of bytes consumed, and any error.
// Returns ErrInvalidPage if the magic signature is missing or data is truncated.
// Returns ErrBadCRC if the CRC checksum does not match.
func ParsePage(data []byte) (*Page, int, error) {
	// Check minimum size for header.
	if len(data) < pageHeaderSize {
		return nil, 0, ErrInvalidPage
	}

	// Verify magic signature.
	if string(data[0:4]) != oggMagic {
		return nil, 0, ErrInvalidPage
	}

	// Parse header fields.
	p := &Page{
		Version:      data[4],
		HeaderType:   data[5],
		GranulePos:   int64(binary.LittleEndian.Uint64(data[6:14])),
		SerialNumber: binary.LittleEndian.Uint32(data[14:18]),
		PageSequence: binary.LittleEndian.Uint32(data[18:22]),
	}

	// Get CRC from header.
	storedCRC := binary.LittleEndian.Uint32(data[22:26])

	// Get segment count.
	numSegments := int(data[26])

	// Check we have enough data for segment table.
	headerSize := pageHeaderSize + numSegments
	if len(data) < headerSize {
		return nil, 0, ErrInvalidPage
	}

	// Copy segment table.
	p.Segments = make([]byte, numSegments)
	copy(p.Segments, data[27:27+numSegments])

	// Calculate payload size from segment table.
	payloadSize := 0
	for _, seg := range p.Segments {
		payloadSize += int(seg)
	}

	// Check we have enough data for payload.
	totalSize := headerSize + payloadSize
	if len(data) < totalSize {
		return nil, 0, ErrInvalidPage
	}

	// Copy payload.
	p.Payload = make([]byte, payloadSize)
	copy(p.Payload, data[headerSize:totalSize])

	// Verify CRC.
	// Create a copy with CRC field zeroed for verification.
	pageCopy := make([]byte, totalSize)
	copy(pageCopy, data[:totalSize])
	pageCopy[22] = 0
	pageCopy[23] = 0
	pageCopy[24] = 0
	pageCopy[25] = 0

	computedCRC := oggCRC(pageCopy)
	if computedCRC != storedCRC {
		return nil, 0, ErrBadCRC
	}

	return p, totalSize, nil
}
