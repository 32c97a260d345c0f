package vorbis

import "encoding/binary"

// header.go builds the three header packets of the Vorbis-over-Ogg
// mapping: identification, comment, and setup. Their order is fixed and
// all three must precede any audio packet of a logical stream.
//
// Reference: Vorbis I specification, sections 4.2 (header decode) and
// A.2 (encapsulation ordering).

// vendorString identifies this encoder in the comment header.
const vendorString = "govorbis"

// Header packet type bytes. Vorbis header packets begin with the type
// byte followed by the string "vorbis"; audio packets begin with an even
// type byte (0).
const (
	packetTypeIdent   = 0x01
	packetTypeComment = 0x03
	packetTypeSetup   = 0x05
)

const headerMagic = "vorbis"

// bitrateUnset is the wire value for an unused bitrate field in the
// identification header.
const bitrateUnset = -1

// HeaderPackets builds the identification, comment, and setup packets for
// a logical stream. comments holds container-native comment fields in
// "NAME=value" form; nil produces an empty comment header.
func (i *Info) HeaderPackets(comments []string) (ident, comment, setup []byte) {
	return i.identPacket(), commentPacket(comments), i.setupPacket()
}

// identPacket builds the 30-byte identification header.
//
//	Byte  0:     packet type 0x01
//	Bytes 1-6:   "vorbis"
//	Bytes 7-10:  version (0)
//	Byte  11:    channel count
//	Bytes 12-15: sample rate
//	Bytes 16-27: bitrate maximum, nominal, minimum (-1 when unset)
//	Byte  28:    log2 blocksize0 | log2 blocksize1 << 4
//	Byte  29:    framing bit (0x01)
func (i *Info) identPacket() []byte {
	data := make([]byte, 30)
	data[0] = packetTypeIdent
	copy(data[1:7], headerMagic)
	binary.LittleEndian.PutUint32(data[7:11], 0)
	data[11] = byte(i.Channels)
	binary.LittleEndian.PutUint32(data[12:16], uint32(i.SampleRate))

	nominal := int32(bitrateUnset)
	if i.Bitrate > 0 {
		nominal = int32(i.Bitrate)
	}
	binary.LittleEndian.PutUint32(data[16:20], uint32(nominal)) // maximum
	binary.LittleEndian.PutUint32(data[20:24], uint32(nominal)) // nominal
	binary.LittleEndian.PutUint32(data[24:28], uint32(nominal)) // minimum

	data[28] = blockLog2 | blockLog2<<4
	data[29] = 0x01
	return data
}

// commentPacket builds the comment header from "NAME=value" fields.
func commentPacket(comments []string) []byte {
	size := 7 + 4 + len(vendorString) + 4 + 1
	for _, c := range comments {
		size += 4 + len(c)
	}

	data := make([]byte, 0, size)
	data = append(data, packetTypeComment)
	data = append(data, headerMagic...)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(vendorString)))
	data = append(data, vendorString...)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(comments)))
	for _, c := range comments {
		data = binary.LittleEndian.AppendUint32(data, uint32(len(c)))
		data = append(data, c...)
	}
	return append(data, 0x01)
}

// setupPacket builds the setup header carrying the codec configuration a
// decoder needs to reconstruct the quantizer: block size and coefficient
// resolution.
func (i *Info) setupPacket() []byte {
	data := make([]byte, 0, 12)
	data = append(data, packetTypeSetup)
	data = append(data, headerMagic...)
	data = binary.LittleEndian.AppendUint16(data, uint16(Block))
	data = append(data, byte(i.coeffBits))
	return append(data, 0x01)
}
