package vorbis

import "math"

// mdct.go implements the forward MDCT analysis step for one block.
//
// The transform consumes Block windowed samples and produces Block/2
// coefficients, the standard 50% lapped layout of the Vorbis analysis
// filterbank.

// blockLog2 is log2(Block), stored in the identification header.
const blockLog2 = 10

// coeffsPerBlock is the number of transform coefficients per channel block.
const coeffsPerBlock = Block / 2

// analysisWindow returns the Vorbis window of length Block:
//
//	w(n) = sin(pi/2 * sin^2(pi*(n+0.5)/N))
func analysisWindow() []float32 {
	w := make([]float32, Block)
	for n := range w {
		s := math.Sin(math.Pi * (float64(n) + 0.5) / Block)
		w[n] = float32(math.Sin(math.Pi / 2 * s * s))
	}
	return w
}

// forwardMDCT computes the forward MDCT of one windowed block into out.
// in must hold Block samples; out must hold coeffsPerBlock coefficients.
// Coefficients are normalized to roughly unit range for quantization.
//
// The basis phase cos(2*pi/N*(t+0.5+N/4)*(k+0.5)) is advanced per sample
// with a rotation recurrence instead of a trig call per term.
func forwardMDCT(in []float32, out []float32) {
	const n = Block
	const scale = 2.0 / n
	for k := 0; k < coeffsPerBlock; k++ {
		delta := 2 * math.Pi / n * (float64(k) + 0.5)
		sinA, cosA := math.Sincos(delta * (0.5 + n/4))
		sinD, cosD := math.Sincos(delta)

		sum := 0.0
		for t := 0; t < n; t++ {
			sum += float64(in[t]) * cosA
			cosA, sinA = cosA*cosD-sinA*sinD, sinA*cosD+cosA*sinD
		}
		out[k] = float32(sum * scale)
	}
}
