// config.go implements session configuration: the two mutually exclusive
// encoding-quality modes and their validation from raw settings values.

package govorbis

import (
	"fmt"
	"strconv"
)

// Settings is the key/value view of a session-scoped configuration block.
// Only the keys "quality" and "bitrate" are consulted.
type Settings map[string]string

// GetString returns the raw value for key and whether it was present.
func (s Settings) GetString(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// Mode is the encoding-quality mode of a session: either quality-managed
// (VBR) or bitrate-managed (CBR). Exactly one is active per session.
type Mode struct {
	quality float64
	bitrate int
	cbr     bool
}

// VariableQuality returns the quality-managed mode for q in [-1.0, 10.0].
// The value is validated at open time by the perceptual model after
// scaling; out-of-range values are rejected by ParseMode when configured
// from settings.
func VariableQuality(q float64) Mode {
	return Mode{quality: q}
}

// ConstantBitrate returns the bitrate-managed mode for a nominal rate in
// kbit/s.
func ConstantBitrate(kbps int) Mode {
	return Mode{bitrate: kbps, cbr: true}
}

// Quality returns the configured quality and whether the mode is
// quality-managed.
func (m Mode) Quality() (float64, bool) {
	return m.quality, !m.cbr
}

// Bitrate returns the configured bitrate in kbit/s and whether the mode
// is bitrate-managed.
func (m Mode) Bitrate() (int, bool) {
	return m.bitrate, m.cbr
}

// ParseMode validates raw quality and bitrate settings values and returns
// the resulting mode. An empty string means the setting is absent.
//
//   - quality present: must parse as a decimal in [-1.0, 10.0]; bitrate
//     must then be absent.
//   - bitrate present: must parse as a positive integer.
//   - neither present: configuration is rejected.
//
// ParseMode has no side effects; failures leave nothing to clean up.
func ParseMode(quality, bitrate string) (Mode, error) {
	if quality != "" {
		// A quality was configured (VBR).
		q, err := strconv.ParseFloat(quality, 64)
		if err != nil || q < -1.0 || q > 10.0 {
			return Mode{}, fmt.Errorf("%w: %q", ErrInvalidQuality, quality)
		}
		if bitrate != "" {
			return Mode{}, ErrConflictingMode
		}
		return VariableQuality(q), nil
	}

	if bitrate == "" {
		return Mode{}, ErrMissingMode
	}

	// A bit rate was configured.
	kbps, err := strconv.Atoi(bitrate)
	if err != nil || kbps <= 0 {
		return Mode{}, fmt.Errorf("%w: %q", ErrInvalidBitrate, bitrate)
	}
	return ConstantBitrate(kbps), nil
}

// ModeFromSettings reads the "quality" and "bitrate" keys from a settings
// block and validates them with ParseMode.
func ModeFromSettings(s Settings) (Mode, error) {
	quality, _ := s.GetString("quality")
	bitrate, _ := s.GetString("bitrate")
	return ParseMode(quality, bitrate)
}
