// encoder.go implements the public encoding session: configuration, open,
// streaming writes, metadata transitions, and incremental page readout.

package govorbis

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/thesyncim/govorbis/container/ogg"
	"github.com/thesyncim/govorbis/internal/vorbis"
)

// MimeType identifies the produced container/codec combination.
const MimeType = "audio/ogg"

// sessionState tracks the encoder lifecycle.
type sessionState int

const (
	stateConfigured sessionState = iota
	stateOpen
	stateClosed
)

// Encoder is one streaming encoding session.
//
// The session sequences configuration, open, write/flush/tag, and close.
// Audio flows one direction: interleaved frames in via Write, analysis
// packets into the Ogg layer, page bytes out via Read. Tag updates and
// flush requests interrupt that flow as side channels.
//
// An Encoder instance maintains internal state and is NOT safe for
// concurrent use. Independent sessions share nothing and may run in
// parallel.
type Encoder struct {
	mode  Mode
	state sessionState

	format   AudioFormat
	info     *vorbis.Info
	analysis *vorbis.Analysis
	stream   *ogg.Stream

	rng *rand.Rand
}

// NewEncoder configures a session from a settings block. Exactly one of
// the "quality" (VBR, -1 to 10) or "bitrate" (CBR, kbit/s) keys must be
// present. On failure the session is never created; there is nothing to
// close.
func NewEncoder(settings Settings) (*Encoder, error) {
	mode, err := ModeFromSettings(settings)
	if err != nil {
		return nil, err
	}
	return NewEncoderMode(mode), nil
}

// NewEncoderMode configures a session from an already-constructed mode.
// Mode values built by ParseMode are fully validated; hand-built values
// are checked by the perceptual model at Open.
func NewEncoderMode(mode Mode) *Encoder {
	return &Encoder{
		mode: mode,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Open binds the session to an audio format and starts the first logical
// stream: it initializes the perceptual model, emits the header packet
// triplet, and makes the session writable.
//
// Postcondition: format.SampleFormat is forced to SampleFormatFloat32;
// this encoder consumes float32 interleaved input only. The rest of the
// format is copied and immutable for the session's lifetime.
//
// Returns ErrCodecInit if the model rejects the channel count, sample
// rate, or mode. A failed session holds no resources and must be
// discarded, not retried.
func (e *Encoder) Open(format *AudioFormat) error {
	switch e.state {
	case stateOpen:
		return ErrAlreadyOpen
	case stateClosed:
		return ErrNotOpen
	}

	format.SampleFormat = SampleFormatFloat32

	var (
		info *vorbis.Info
		err  error
	)
	if q, ok := e.mode.Quality(); ok {
		// The public quality range -1..10 maps onto the model's
		// base quality -0.1..1.0.
		info, err = vorbis.NewVBRInfo(format.Channels, format.SampleRate, q*0.1)
	} else {
		kbps, _ := e.mode.Bitrate()
		info, err = vorbis.NewCBRInfo(format.Channels, format.SampleRate, kbps*1000)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCodecInit, err)
	}

	e.format = *format
	e.info = info
	e.analysis = vorbis.NewAnalysis(info)
	e.stream = ogg.NewStream(e.newSerial())
	e.state = stateOpen

	e.sendHeaders(nil)
	return nil
}

// Write encodes interleaved float32 little-endian PCM frames. The length
// must be a multiple of the frame size (Channels x 4 bytes); partial
// frames are a caller contract violation and the only write-time error.
//
// Write ingests the frames, drains every packet the analysis can produce
// from the input so far, and submits them to the container. It performs
// bounded work and never waits for a consumer to Read.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.state != stateOpen {
		return 0, ErrNotOpen
	}
	frameSize := e.format.FrameSize()
	if len(p)%frameSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes, frame size %d", ErrPartialFrame, len(p), frameSize)
	}

	numFrames := len(p) / frameSize
	if numFrames > 0 {
		buf := e.analysis.Buffer(numFrames)
		deinterleave(buf, p, numFrames)
		e.analysis.Wrote(numFrames)
		e.drainPackets()
	}
	return len(p), nil
}

// Read copies ready page bytes into p and returns the count, 0 when no
// page bytes are pending. Read is non-blocking, has no effect on codec
// state, and may be called any number of times between writes; unread
// pages accumulate without bound.
func (e *Encoder) Read(p []byte) int {
	if e.stream == nil {
		return 0
	}
	return e.stream.PageOut(p)
}

// Flush forces the container to emit all pending data as pages
// immediately, regardless of fill level. Codec state is untouched. With
// nothing pending, Flush is a no-op and no page sequence number advances.
func (e *Encoder) Flush() {
	if e.state != stateOpen {
		return
	}
	e.stream.Flush()
}

// PreTag ends the current analysis segment: it marks end of input, drains
// the final packets (the last one flagged end-of-stream), reinitializes
// the analysis state without destroying the model, and forces a page
// flush. Use it before SetTag or at logical segment boundaries.
func (e *Encoder) PreTag() {
	if e.state != stateOpen {
		return
	}

	e.analysis.Wrote(0)
	e.drainPackets()

	// Reinitialize the analysis state to reset the end-of-stream
	// marker; the model descriptor is reused as-is.
	e.analysis.Reset()

	e.stream.Flush()
}

// SetTag replaces the stream metadata mid-session. The container restarts
// as a new logical stream under a fresh serial number and a full header
// triplet carrying the tag's comment fields is emitted before any further
// audio. Call PreTag first to end the previous segment cleanly.
func (e *Encoder) SetTag(tag *Tag) {
	if e.state != stateOpen {
		return
	}

	// Clear any end-of-stream marker left by a preceding segment end.
	e.analysis.Reset()

	// End the current logical stream and begin a new one.
	e.stream.Reset(e.newSerial())

	e.sendHeaders(tag)
}

// Close releases the codec session and ends the container stream. Close
// is terminal: the session cannot be reopened and further writes fail
// with ErrNotOpen.
func (e *Encoder) Close() {
	if e.state == stateClosed {
		return
	}
	if e.state == stateOpen {
		e.stream.End()
		e.analysis = nil
		e.info = nil
	}
	e.state = stateClosed
}

// Format returns the audio format the session was opened with.
func (e *Encoder) Format() AudioFormat {
	return e.format
}

// sendHeaders submits the identification, comment, and setup header
// packets, in that fixed order, before any audio packet of the current
// logical stream. Header packets carry granule position 0.
func (e *Encoder) sendHeaders(tag *Tag) {
	ident, comment, setup := e.info.HeaderPackets(tag.comments())
	for _, data := range [][]byte{ident, comment, setup} {
		e.stream.PacketIn(ogg.Packet{Data: data, GranulePos: 0})
	}
}

// drainPackets moves every packet the analysis currently has into the
// container. The drain is finite and runs to completion on the caller's
// goroutine.
func (e *Encoder) drainPackets() {
	for {
		pkt, ok := e.analysis.NextPacket()
		if !ok {
			return
		}
		e.stream.PacketIn(ogg.Packet{
			Data:       pkt.Data,
			GranulePos: pkt.GranulePos,
			EOS:        pkt.EOS,
		})
	}
}

// newSerial draws a random logical-stream identifier distinct from the
// current one. Collision resistance within one process lifetime is all
// that is required.
func (e *Encoder) newSerial() uint32 {
	for {
		serial := e.rng.Uint32()
		if e.stream == nil || serial != e.stream.Serial() {
			return serial
		}
	}
}
