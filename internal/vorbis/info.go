// Package vorbis implements the encoder-side Vorbis codec session: the
// perceptual-model descriptor (Info), the analysis accumulator that turns
// planar PCM into compressed packets (Analysis), and construction of the
// three header packets the Vorbis-over-Ogg mapping requires.
//
// The model descriptor is validated once and then shared by any number of
// analysis resets; the accumulator and its working buffers are cheap to
// recreate, which is what a mid-stream restart needs.
package vorbis

import (
	"errors"
	"fmt"
)

// Block is the number of frames consumed by one analysis step.
const Block = 1024

// Model parameter limits. Combinations outside these ranges are rejected
// at descriptor construction, never later.
const (
	MinChannels = 1
	MaxChannels = 255

	MinSampleRate = 1000
	MaxSampleRate = 200000

	// Quantizer resolution bounds, bits per transform coefficient.
	minCoeffBits = 1
	maxCoeffBits = 16
)

// Errors for model descriptor construction.
var (
	// ErrInvalidChannels indicates an unsupported channel count.
	ErrInvalidChannels = errors.New("vorbis: invalid channels (must be 1-255)")

	// ErrInvalidSampleRate indicates an unsupported sample rate.
	ErrInvalidSampleRate = errors.New("vorbis: invalid sample rate (must be 1000-200000)")

	// ErrInvalidQuality indicates a base quality outside [-0.1, 1.0].
	ErrInvalidQuality = errors.New("vorbis: invalid base quality (must be -0.1 to 1.0)")

	// ErrInvalidBitrate indicates a non-positive nominal bitrate.
	ErrInvalidBitrate = errors.New("vorbis: invalid bitrate (must be > 0)")
)

// Info is the perceptual-model descriptor for one encoding session.
// It is immutable after construction and outlives any Analysis derived
// from it.
type Info struct {
	// Channels is the number of audio channels (1-255).
	Channels int

	// SampleRate is the PCM sample rate in Hz.
	SampleRate int

	// Quality is the base quality in [-0.1, 1.0] for quality-managed
	// encoding. Meaningless when Bitrate is set.
	Quality float64

	// Bitrate is the nominal bitrate in bits per second for
	// bitrate-managed encoding, or 0 for quality-managed encoding.
	Bitrate int

	// coeffBits is the derived quantizer resolution per coefficient.
	coeffBits int
}

// NewVBRInfo constructs a quality-managed model descriptor.
// baseQuality is the quality value already scaled to [-0.1, 1.0].
// Returns an error if the underlying model rejects the parameters.
func NewVBRInfo(channels, sampleRate int, baseQuality float64) (*Info, error) {
	if err := validateFormat(channels, sampleRate); err != nil {
		return nil, err
	}
	if baseQuality < -0.1 || baseQuality > 1.0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidQuality, baseQuality)
	}

	// Map quality linearly onto the quantizer resolution range.
	bits := minCoeffBits + int((baseQuality+0.1)/1.1*10+0.5)
	return &Info{
		Channels:   channels,
		SampleRate: sampleRate,
		Quality:    baseQuality,
		coeffBits:  clampBits(bits),
	}, nil
}

// NewCBRInfo constructs a bitrate-managed model descriptor.
// bitrate is the nominal rate in bits per second.
// Returns an error if the underlying model rejects the parameters.
func NewCBRInfo(channels, sampleRate, bitrate int) (*Info, error) {
	if err := validateFormat(channels, sampleRate); err != nil {
		return nil, err
	}
	if bitrate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitrate, bitrate)
	}

	// Resolution that would hit the target rate if every coefficient
	// used the same number of bits. Rate management trims the rest.
	bitsPerBlock := bitrate * Block / sampleRate
	bits := bitsPerBlock / (coeffsPerBlock * channels)
	return &Info{
		Channels:   channels,
		SampleRate: sampleRate,
		Bitrate:    bitrate,
		coeffBits:  clampBits(bits),
	}, nil
}

// TargetPacketBytes returns the rate-managed packet size for one full
// analysis block, or 0 for quality-managed encoding.
func (i *Info) TargetPacketBytes() int {
	if i.Bitrate == 0 {
		return 0
	}
	target := i.Bitrate * Block / i.SampleRate / 8
	if target < 1 {
		target = 1
	}
	return target
}

func validateFormat(channels, sampleRate int) error {
	if channels < MinChannels || channels > MaxChannels {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if sampleRate < MinSampleRate || sampleRate > MaxSampleRate {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

func clampBits(bits int) int {
	if bits < minCoeffBits {
		return minCoeffBits
	}
	if bits > maxCoeffBits {
		return maxCoeffBits
	}
	return bits
}
