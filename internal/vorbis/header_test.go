package vorbis

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestIdentPacket(t *testing.T) {
	info, err := NewVBRInfo(2, 44100, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	ident, _, _ := info.HeaderPackets(nil)

	if len(ident) != 30 {
		t.Fatalf("ident packet length = %d, want 30", len(ident))
	}
	if ident[0] != packetTypeIdent {
		t.Errorf("type byte = 0x%02x, want 0x01", ident[0])
	}
	if !bytes.Equal(ident[1:7], []byte("vorbis")) {
		t.Errorf("magic = %q, want \"vorbis\"", ident[1:7])
	}
	if v := binary.LittleEndian.Uint32(ident[7:11]); v != 0 {
		t.Errorf("version = %d, want 0", v)
	}
	if ident[11] != 2 {
		t.Errorf("channels = %d, want 2", ident[11])
	}
	if rate := binary.LittleEndian.Uint32(ident[12:16]); rate != 44100 {
		t.Errorf("sample rate = %d, want 44100", rate)
	}
	// Quality-managed: bitrate fields unset.
	if nominal := int32(binary.LittleEndian.Uint32(ident[20:24])); nominal != -1 {
		t.Errorf("nominal bitrate = %d, want -1", nominal)
	}
	if ident[28] != blockLog2|blockLog2<<4 {
		t.Errorf("blocksizes byte = 0x%02x", ident[28])
	}
	if ident[29] != 0x01 {
		t.Errorf("framing byte = 0x%02x, want 0x01", ident[29])
	}
}

func TestIdentPacketCBR(t *testing.T) {
	info, err := NewCBRInfo(1, 48000, 128000)
	if err != nil {
		t.Fatal(err)
	}

	ident := info.identPacket()
	if nominal := int32(binary.LittleEndian.Uint32(ident[20:24])); nominal != 128000 {
		t.Errorf("nominal bitrate = %d, want 128000", nominal)
	}
}

func TestCommentPacket(t *testing.T) {
	comments := []string{"ARTIST=someone", "TITLE=a song"}
	data := commentPacket(comments)

	if data[0] != packetTypeComment {
		t.Errorf("type byte = 0x%02x, want 0x03", data[0])
	}
	if !bytes.Equal(data[1:7], []byte("vorbis")) {
		t.Errorf("magic = %q, want \"vorbis\"", data[1:7])
	}
	if data[len(data)-1] != 0x01 {
		t.Errorf("framing byte = 0x%02x, want 0x01", data[len(data)-1])
	}

	// Walk the comment structure.
	off := 7
	vendorLen := int(binary.LittleEndian.Uint32(data[off : off+4]))
	off += 4
	if got := string(data[off : off+vendorLen]); got != vendorString {
		t.Errorf("vendor = %q, want %q", got, vendorString)
	}
	off += vendorLen
	count := int(binary.LittleEndian.Uint32(data[off : off+4]))
	off += 4
	if count != len(comments) {
		t.Fatalf("comment count = %d, want %d", count, len(comments))
	}
	for i := 0; i < count; i++ {
		n := int(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
		if got := string(data[off : off+n]); got != comments[i] {
			t.Errorf("comment %d = %q, want %q", i, got, comments[i])
		}
		off += n
	}
	if off != len(data)-1 {
		t.Errorf("trailing bytes before framing bit: off=%d len=%d", off, len(data))
	}
}

func TestCommentPacketEmpty(t *testing.T) {
	data := commentPacket(nil)
	off := 7 + 4 + len(vendorString)
	if count := binary.LittleEndian.Uint32(data[off : off+4]); count != 0 {
		t.Errorf("comment count = %d, want 0", count)
	}
	if len(data) != off+4+1 {
		t.Errorf("packet length = %d, want %d", len(data), off+4+1)
	}
}

func TestSetupPacket(t *testing.T) {
	info, err := NewVBRInfo(2, 44100, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	setup := info.setupPacket()
	if setup[0] != packetTypeSetup {
		t.Errorf("type byte = 0x%02x, want 0x05", setup[0])
	}
	if !bytes.Equal(setup[1:7], []byte("vorbis")) {
		t.Errorf("magic = %q, want \"vorbis\"", setup[1:7])
	}
	if bs := binary.LittleEndian.Uint16(setup[7:9]); bs != Block {
		t.Errorf("block size = %d, want %d", bs, Block)
	}
	if setup[9] != byte(info.coeffBits) {
		t.Errorf("coeff bits = %d, want %d", setup[9], info.coeffBits)
	}
	if setup[len(setup)-1] != 0x01 {
		t.Errorf("framing byte = 0x%02x, want 0x01", setup[len(setup)-1])
	}
}
