// format.go defines the input audio format of an encoding session.

package govorbis

// SampleFormat identifies the PCM sample representation.
type SampleFormat int

const (
	// SampleFormatUnset means the caller expressed no preference; Open
	// fills in the format the encoder requires.
	SampleFormatUnset SampleFormat = iota

	// SampleFormatFloat32 is 32-bit float, little-endian, interleaved.
	// This encoder always operates on float32 input.
	SampleFormatFloat32
)

// bytesPerSample is the width of one float32 sample on the wire.
const bytesPerSample = 4

// AudioFormat describes the PCM input of a session. It is fixed at open
// time and immutable for the lifetime of the session.
type AudioFormat struct {
	// Channels is the number of interleaved channels (>= 1).
	Channels int

	// SampleRate is the sample rate in Hz (> 0).
	SampleRate int

	// SampleFormat is the sample representation. Open forces it to
	// SampleFormatFloat32; see Encoder.Open.
	SampleFormat SampleFormat
}

// FrameSize returns the byte size of one interleaved frame
// (Channels x 4 bytes). Write lengths must be multiples of this.
func (f AudioFormat) FrameSize() int {
	return f.Channels * bytesPerSample
}
