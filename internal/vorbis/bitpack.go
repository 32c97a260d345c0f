package vorbis

// bitpack.go implements the least-significant-bit-first bit packing used
// by the Vorbis bitstream convention.

// bitWriter packs values LSb-first into a byte slice.
type bitWriter struct {
	buf []byte
	bit uint // bits used in the final byte (0-7)
}

// writeBits appends the low n bits of v, least significant bit first.
func (w *bitWriter) writeBits(v uint32, n int) {
	for n > 0 {
		if w.bit == 0 {
			w.buf = append(w.buf, 0)
		}
		free := 8 - w.bit
		take := uint(n)
		if take > free {
			take = free
		}
		mask := uint32(1)<<take - 1
		w.buf[len(w.buf)-1] |= byte(v&mask) << w.bit
		v >>= take
		w.bit = (w.bit + take) % 8
		n -= int(take)
	}
}

// bytes returns the packed bytes, including a final partial byte.
func (w *bitWriter) bytes() []byte {
	return w.buf
}

// bitReader unpacks LSb-first values from a byte slice.
type bitReader struct {
	buf []byte
	pos uint // absolute bit position
}

// readBits returns the next n bits, least significant bit first.
// Reading past the end yields zero bits.
func (r *bitReader) readBits(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		byteIdx := r.pos / 8
		if int(byteIdx) < len(r.buf) {
			bit := (r.buf[byteIdx] >> (r.pos % 8)) & 1
			v |= uint32(bit) << uint(i)
		}
		r.pos++
	}
	return v
}
