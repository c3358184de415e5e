// SPDX-License-Identifier: MIT

// Package source feeds the streaming pipeline from recorded audio.
//
// The normalizer consumes float32 sample chunks the way a TTS engine emits
// them. This package produces the same shape of input from audio files, so
// the pipeline can be exercised, tested and benchmarked against real
// recordings: decoders for WAV, MP3, Ogg Vorbis and AIFF expose a common
// Source stream, a Resampler brings arbitrary rates to the pipeline rate,
// and a Chunker slices the stream into fixed-duration mono chunks with
// last-chunk lookahead.
//
//	f, _ := os.Open("speech.wav")
//	src, _ := source.NewWAVSource(f)
//	defer src.Close()
//
//	resampled := source.NewResampler(src, 24000)
//	chunks := source.NewChunker(resampled, 24000/2) // 500 ms chunks
//
//	for {
//	    chunk, last, err := chunks.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    pcm16 := norm.Normalize(chunk, last)
//	    // encode pcm16
//	}
//
// Decoders can also be looked up by format tag through a Registry, typically
// keyed by file extension; DefaultRegistry covers all built-in formats.
package source
