// errors.go defines public error types for the govorbis package.

package govorbis

import "errors"

// Public error types for session configuration and opening.
var (
	// ErrInvalidQuality indicates the configured quality is not a number
	// in the range -1 to 10.
	ErrInvalidQuality = errors.New("govorbis: invalid quality (must be a number in -1 to 10)")

	// ErrInvalidBitrate indicates the configured bitrate is not a
	// positive integer.
	ErrInvalidBitrate = errors.New("govorbis: invalid bitrate (must be a positive integer)")

	// ErrConflictingMode indicates both quality and bitrate were
	// configured. The two modes are mutually exclusive per session.
	ErrConflictingMode = errors.New("govorbis: quality and bitrate are both defined")

	// ErrMissingMode indicates neither quality nor bitrate was configured.
	ErrMissingMode = errors.New("govorbis: neither bitrate nor quality defined")

	// ErrCodecInit indicates the perceptual model rejected the audio
	// format and mode combination at open time. The session must be
	// discarded; it cannot be retried in place.
	ErrCodecInit = errors.New("govorbis: error initializing vorbis encoder")

	// ErrPartialFrame indicates Write was given a byte count that is not
	// a multiple of the frame size (channels x 4 bytes). This is a
	// caller contract violation.
	ErrPartialFrame = errors.New("govorbis: write length is not a multiple of the frame size")

	// ErrNotOpen indicates a streaming operation was attempted on a
	// session that is not open.
	ErrNotOpen = errors.New("govorbis: session is not open")

	// ErrAlreadyOpen indicates Open was called more than once on a
	// session.
	ErrAlreadyOpen = errors.New("govorbis: session is already open")
)
