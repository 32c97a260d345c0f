package vorbis

// analysis.go implements the analysis accumulator: planar PCM goes in via
// Buffer/Wrote, compressed packets come out via NextPacket. The
// accumulator and its working buffers are owned by one Analysis value and
// are recreated together on Reset; the Info descriptor they derive from
// is shared and immutable.

// Packet is one unit of compressed output corresponding to one analyzed
// audio block.
type Packet struct {
	// Data is the raw packet payload.
	Data []byte

	// GranulePos is the absolute PCM frame position at the end of this
	// packet.
	GranulePos int64

	// EOS marks the final packet of the current logical stream,
	// produced after the end-of-segment signal (Wrote(0)).
	EOS bool
}

// Analysis accumulates planar PCM frames and drains them as compressed
// packets, one per analysis block.
//
// An Analysis is not safe for concurrent use.
type Analysis struct {
	info *Info

	pcm    [][]float32 // planar accumulator, one slice per channel
	filled int         // frames currently buffered

	window []float32 // analysis window, Block long
	work   []float32 // per-block transform working buffer

	granule    int64 // absolute frame position consumed into packets
	endOfInput bool  // Wrote(0) seen
	eosEmitted bool

	reservoir int // bitrate-management byte reservoir (CBR only)
}

// NewAnalysis creates the analysis state for a validated model descriptor.
func NewAnalysis(info *Info) *Analysis {
	pcm := make([][]float32, info.Channels)
	for ch := range pcm {
		pcm[ch] = make([]float32, 0, Block*2)
	}
	return &Analysis{
		info:   info,
		pcm:    pcm,
		window: analysisWindow(),
		work:   make([]float32, coeffsPerBlock),
	}
}

// Buffer returns writable per-channel space for up to n frames. The caller
// fills buf[ch][i] for each channel and then calls Wrote with the number
// of frames actually written.
func (a *Analysis) Buffer(n int) [][]float32 {
	out := make([][]float32, len(a.pcm))
	for ch := range a.pcm {
		need := a.filled + n
		if cap(a.pcm[ch]) < need {
			grown := make([]float32, a.filled, need+Block)
			copy(grown, a.pcm[ch][:a.filled])
			a.pcm[ch] = grown
		}
		a.pcm[ch] = a.pcm[ch][:need]
		out[ch] = a.pcm[ch][a.filled:need]
	}
	return out
}

// Wrote advances the accumulator by n frames previously filled via Buffer.
// Wrote(0) marks the end of the current segment: the next drain emits a
// final packet flagged EOS, after which Reset is required before more
// input is accepted.
func (a *Analysis) Wrote(n int) {
	if n == 0 {
		a.endOfInput = true
		return
	}
	a.filled += n
}

// NextPacket produces the next compressed packet, or ok=false when the
// accumulator has no further complete blocks. The drain is finite per
// input batch and must run to ok=false before the next Buffer/Wrote.
func (a *Analysis) NextPacket() (pkt Packet, ok bool) {
	if a.filled >= Block {
		data := a.encodeBlock(Block)
		a.consume(Block)
		return Packet{Data: data, GranulePos: a.granule}, true
	}

	if a.endOfInput && !a.eosEmitted {
		a.eosEmitted = true
		n := a.filled
		data := a.encodeBlock(n) // zero-padded final short block
		a.consume(n)
		return Packet{Data: data, GranulePos: a.granule, EOS: true}, true
	}

	return Packet{}, false
}

// Reset releases the accumulator and working buffers and re-derives them
// from the same model descriptor, clearing the end-of-stream marker. The
// granule position restarts at zero for the new logical stream.
func (a *Analysis) Reset() {
	for ch := range a.pcm {
		a.pcm[ch] = a.pcm[ch][:0]
	}
	a.filled = 0
	a.granule = 0
	a.endOfInput = false
	a.eosEmitted = false
	a.reservoir = 0
}

// consume drops n frames from the front of the accumulator and advances
// the granule position.
func (a *Analysis) consume(n int) {
	for ch := range a.pcm {
		copy(a.pcm[ch], a.pcm[ch][n:a.filled])
		a.pcm[ch] = a.pcm[ch][:a.filled-n]
	}
	a.filled -= n
	a.granule += int64(n)
}

// encodeBlock runs the perceptual analysis step over the first n buffered
// frames (zero-padding a final short block) and packs the quantized
// coefficients into an audio packet. n may be 0 for a bare end-of-stream
// marker packet.
func (a *Analysis) encodeBlock(n int) []byte {
	// Audio packets begin with an even type byte.
	w := &bitWriter{buf: []byte{0x00}}

	if n > 0 {
		bits := a.info.coeffBits
		levels := uint32(1)<<bits - 1
		block := make([]float32, Block)

		for ch := range a.pcm {
			// Window the block; frames beyond n stay zero.
			for t := 0; t < n; t++ {
				block[t] = a.pcm[ch][t] * a.window[t]
			}
			for t := n; t < Block; t++ {
				block[t] = 0
			}

			forwardMDCT(block, a.work)
			for _, c := range a.work {
				w.writeBits(quantize(c, levels), bits)
			}
		}
	}

	return a.manageRate(w.bytes())
}

// quantize maps a coefficient in roughly [-1, 1] onto [0, levels].
func quantize(v float32, levels uint32) uint32 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return uint32((float64(v)*0.5 + 0.5) * float64(levels))
}
