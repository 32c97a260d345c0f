// Package govorbis implements a streaming Vorbis encoder producing an Ogg
// bitstream in pure Go.
//
// An Encoder is a single encoding session: it is configured with exactly
// one of two quality modes, opened for a fixed audio format, fed
// interleaved float32 PCM with Write, and drained incrementally with
// Read. Output is a standard self-framing Ogg bitstream whose pages can
// be verified independently and whose logical stream always begins with
// the identification, comment, and setup header packets, in that order.
//
// # Session Lifecycle
//
// A session moves through configure, open, stream, close:
//
//	enc, err := govorbis.NewEncoder(govorbis.Settings{"quality": "5.0"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	format := govorbis.AudioFormat{Channels: 2, SampleRate: 44100}
//	if err := enc.Open(&format); err != nil {
//	    log.Fatal(err)
//	}
//	defer enc.Close()
//
//	enc.Write(pcmBytes) // interleaved float32 little-endian frames
//	enc.Flush()
//
//	buf := make([]byte, 64*1024)
//	for {
//	    n := enc.Read(buf)
//	    if n == 0 {
//	        break
//	    }
//	    sink.Write(buf[:n])
//	}
//
// Input and output are fully decoupled: Write never blocks on a consumer
// and Read never blocks on input; unread pages simply accumulate.
//
// # Metadata Updates
//
// SetTag restarts the logical Ogg stream with a fresh serial number and a
// new header triplet carrying the tag's comment fields, signalling
// downstream readers to treat what follows as a new bitstream segment.
// PreTag prepares the boundary: it drains the current segment to a clean
// end and flushes the pages produced so far.
//
// # Concurrency
//
// An Encoder is not safe for concurrent use. Hosts needing parallel
// encodes run fully independent sessions.
package govorbis
