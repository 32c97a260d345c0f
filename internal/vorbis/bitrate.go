package vorbis

// bitrate.go implements the bitrate-management step applied to each
// packet after analysis. Quality-managed sessions pass packets through
// untouched; bitrate-managed sessions shape packet sizes toward the
// nominal rate using a small byte reservoir, trimming when running hot
// and padding when the reservoir overfills.

// reservoirBlocks bounds the reservoir at this many target-sized packets.
const reservoirBlocks = 4

// manageRate applies rate management to a finished packet payload and
// returns the adjusted payload.
func (a *Analysis) manageRate(data []byte) []byte {
	target := a.info.TargetPacketBytes()
	if target == 0 {
		return data
	}

	a.reservoir += target - len(data)

	if a.reservoir < 0 {
		// Running over rate: trim this packet back toward target.
		// The leading type byte always survives.
		trim := -a.reservoir
		if trim > len(data)-1 {
			trim = len(data) - 1
		}
		data = data[:len(data)-trim]
		a.reservoir += trim
		return data
	}

	if maxReservoir := reservoirBlocks * target; a.reservoir > maxReservoir {
		// Running under rate: pad up to the reservoir bound.
		pad := a.reservoir - maxReservoir
		data = append(data, make([]byte, pad)...)
		a.reservoir -= pad
	}
	return data
}
