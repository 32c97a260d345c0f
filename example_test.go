package govorbis_test

import (
	"fmt"
	"log"
	"math"

	"github.com/thesyncim/govorbis"
)

func ExampleNewEncoder() {
	// Create a quality-based (VBR) encoding session
	enc, err := govorbis.NewEncoder(govorbis.Settings{"quality": "5.0"})
	if err != nil {
		log.Fatal(err)
	}
	defer enc.Close()

	format := govorbis.AudioFormat{Channels: 2, SampleRate: 44100}
	if err := enc.Open(&format); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Session: %dHz, %d channels, %s\n",
		format.SampleRate, format.Channels, govorbis.MimeType)
	// Output: Session: 44100Hz, 2 channels, audio/ogg
}

func ExampleEncoder_Write() {
	enc, err := govorbis.NewEncoder(govorbis.Settings{"quality": "3.0"})
	if err != nil {
		log.Fatal(err)
	}
	defer enc.Close()

	format := govorbis.AudioFormat{Channels: 1, SampleRate: 44100}
	if err := enc.Open(&format); err != nil {
		log.Fatal(err)
	}

	// 1024 frames of mono silence, interleaved little-endian float32
	pcm := make([]byte, 1024*format.FrameSize())
	if _, err := enc.Write(pcm); err != nil {
		log.Fatal(err)
	}
	enc.Flush()

	out := make([]byte, 64*1024)
	n := enc.Read(out)
	fmt.Printf("Produced %d page bytes\n", n)
	// Output will vary with the configured quality
}

func ExampleEncoder_SetTag() {
	enc, err := govorbis.NewEncoder(govorbis.Settings{"bitrate": "128"})
	if err != nil {
		log.Fatal(err)
	}
	defer enc.Close()

	format := govorbis.AudioFormat{Channels: 2, SampleRate: 44100}
	if err := enc.Open(&format); err != nil {
		log.Fatal(err)
	}

	// End the current segment, then start a new logical stream
	// carrying the updated metadata.
	enc.PreTag()

	var tag govorbis.Tag
	tag.AddItem(govorbis.TagArtist, "Example Artist")
	tag.AddItem(govorbis.TagTitle, "Example Title")
	enc.SetTag(&tag)

	fmt.Println("Metadata updated mid-stream")
	// Output: Metadata updated mid-stream
}

func Example_session() {
	// Complete session: configure, open, encode a tone, finish.
	enc, err := govorbis.NewEncoder(govorbis.Settings{"quality": "5.0"})
	if err != nil {
		log.Fatal(err)
	}
	defer enc.Close()

	format := govorbis.AudioFormat{Channels: 1, SampleRate: 44100}
	if err := enc.Open(&format); err != nil {
		log.Fatal(err)
	}

	// 4096 frames of a 440Hz tone
	const frames = 4096
	pcm := make([]byte, frames*format.FrameSize())
	for i := 0; i < frames; i++ {
		s := float32(math.Sin(2 * math.Pi * 440 * float64(i) / 44100))
		bits := math.Float32bits(s)
		pcm[i*4] = byte(bits)
		pcm[i*4+1] = byte(bits >> 8)
		pcm[i*4+2] = byte(bits >> 16)
		pcm[i*4+3] = byte(bits >> 24)
	}

	if _, err := enc.Write(pcm); err != nil {
		log.Fatal(err)
	}
	enc.Flush()

	var total int
	buf := make([]byte, 4096)
	for {
		n := enc.Read(buf)
		if n == 0 {
			break
		}
		total += n
	}
	fmt.Printf("Encoded %d frames\n", frames)
	// Output: Encoded 4096 frames
}

func ExampleParseMode() {
	mode, err := govorbis.ParseMode("5.0", "")
	if err != nil {
		log.Fatal(err)
	}

	q, _ := mode.Quality()
	fmt.Printf("Quality: %.1f\n", q)
	// Output: Quality: 5.0
}
