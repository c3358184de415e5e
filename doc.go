// SPDX-License-Identifier: MIT

// Package ttsaudio prepares and encodes synthesized speech audio for
// delivery.
//
// Text-to-speech models emit audio in fixed-size chunks with padding and
// synthesis artifacts at the edges. This package normalizes each chunk
// (peak scaling, gap trimming, silence-boundary cutting) and encodes it to
// a client-facing format, keeping per-stream state isolated so many streams
// can be processed in parallel.
//
// # Streaming
//
// A Converter owns the state of one stream. Feed it chunks as the model
// produces them; every returned buffer is a complete bitstream that a
// client can play on its own:
//
//	conv, err := ttsaudio.NewConverter("opus", ttsaudio.ConverterOptions{})
//	if err != nil {
//	    // unknown format tag
//	}
//
//	for i, chunk := range chunks {
//	    data, err := conv.ConvertChunk(chunk, i == len(chunks)-1)
//	    if err != nil {
//	        // codec failure, wrapped in *encode.EncodeError
//	    }
//	    send(data)
//	}
//
// # One-shot conversion
//
// Convert encodes a single buffer without normalization, for audio that is
// already leveled:
//
//	data, err := ttsaudio.Convert(samples, 24000, encode.WAV, nil)
//
// # Supported formats
//
// wav, mp3, opus, flac and pcm. The pcm output is raw little-endian 16-bit
// samples with no header. Parsing any other tag, including aac, returns
// *encode.UnsupportedFormatError.
//
// # Feeding from files
//
// The source package decodes recorded audio (WAV, MP3, Ogg Vorbis, AIFF)
// into float32 chunks, with resampling and mono mixdown, so file input can
// drive the same pipeline:
//
//	src, _ := source.NewWAVSource(file)
//	pcm16, _ := ttsaudio.ReadAllMono16(src, 24000)
//
// # Configuration
//
// The normalize package exposes the trim and pad parameters; the config
// package loads them from a YAML file together with per-format encoder
// overrides.
package ttsaudio
