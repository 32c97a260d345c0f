// pcm.go converts interleaved float32 little-endian PCM bytes into the
// planar form the analysis accumulator consumes.

package govorbis

import (
	"encoding/binary"
	"math"
)

// deinterleave scatters numFrames interleaved float32 frames from src
// into per-channel planar destination slices. dst must hold one slice of
// at least numFrames samples per channel.
func deinterleave(dst [][]float32, src []byte, numFrames int) {
	channels := len(dst)
	for i := 0; i < numFrames; i++ {
		for ch := 0; ch < channels; ch++ {
			bits := binary.LittleEndian.Uint32(src)
			dst[ch][i] = math.Float32frombits(bits)
			src = src[4:]
		}
	}
}
