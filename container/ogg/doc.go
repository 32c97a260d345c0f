// Package ogg implements the Ogg container format for Vorbis audio.
//
// This package provides the low-level primitives for framing compressed
// packets into Ogg pages as specified in RFC 3533 (The Ogg Encapsulation
// Format) and the Vorbis I specification's Ogg mapping.
//
// The central type is Stream, a pull-model packetizer: packets go in via
// PacketIn, completed pages accumulate internally, and the caller drains
// serialized page bytes with PageOut whenever convenient. This mirrors
// the libogg ogg_stream_state API and decouples packet submission from
// output consumption, which is what a streaming encoder needs when its
// output is read on a schedule it does not control.
//
// # Page Structure
//
// An Ogg page has the following structure:
//
//	Bytes 0-3:   "OggS" capture pattern (magic signature)
//	Byte 4:      Stream structure version (always 0)
//	Byte 5:      Header type flags (continuation, BOS, EOS)
//	Bytes 6-13:  Granule position (for Vorbis: PCM sample position)
//	Bytes 14-17: Bitstream serial number
//	Bytes 18-21: Page sequence number
//	Bytes 22-25: CRC checksum
//	Byte 26:     Number of segments
//	Bytes 27+:   Segment table (one byte per segment)
//	Remaining:   Page payload data
//
// # Segment Table
//
// Packets are split into segments of up to 255 bytes each. A segment value
// of 255 indicates the packet continues in the next segment. A value less
// than 255 marks the end of a packet. A packet whose length is an exact
// multiple of 255 therefore ends with a zero-length segment.
//
// Example: A 600-byte packet uses segments [255, 255, 90] (255+255+90=600)
//
// # Granule Position
//
// For Vorbis streams the granule position of a page is the absolute PCM
// sample position of the last packet that ends on the page. A page on
// which no packet ends carries the sentinel -1. Pages holding only header
// packets carry 0.
//
// # Logical Streams
//
// Each Stream carries a serial number identifying one logical bitstream.
// Reset begins a new logical stream: the first page after a Reset carries
// the BOS (beginning of stream) flag and, per the Vorbis mapping, holds
// exactly one packet. A packet submitted with EOS set marks the page that
// completes it with the EOS (end of stream) flag.
//
// # CRC Calculation
//
// Ogg uses CRC-32 with polynomial 0x04C11DB7 (NOT the IEEE polynomial used
// by hash/crc32). The CRC is computed over the entire page with the CRC
// field set to zero.
//
// # References
//
//   - RFC 3533: The Ogg Encapsulation Format Version 0
//   - Vorbis I specification, section A: Embedding Vorbis into an Ogg stream
package ogg
