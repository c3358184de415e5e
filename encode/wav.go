// SPDX-License-Identifier: MIT

package encode

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// encodeWAVStream writes a WAV file through the go-audio encoder. The
// library finalizes the RIFF sizes on Close by seeking back over the header,
// which keeps the output correct even if the write path changes, at the cost
// of an in-memory write-seeker.
func encodeWAVStream(samples []int16, sampleRate int) ([]byte, error) {
	buf := &writeSeekBuffer{}

	enc := gowav.NewEncoder(buf, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           data,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf.Bytes(), nil
}

// encodeWAVRaw builds a canonical 44-byte-header WAV in a single pass. The
// sizes are known up front for an in-memory buffer, so no seeking is needed.
func encodeWAVRaw(samples []int16, sampleRate int) []byte {
	const (
		numChannels   = 1
		bitsPerSample = 16
	)

	dataSize := uint32(len(samples) * 2)
	out := make([]byte, 44+len(samples)*2)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], 36+dataSize)
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(out[22:24], numChannels)
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate)*numChannels*(bitsPerSample/8))
	binary.LittleEndian.PutUint16(out[32:34], numChannels*(bitsPerSample/8))
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], dataSize)

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[44+i*2:], uint16(s))
	}

	return out
}

// writeSeekBuffer is an in-memory io.WriteSeeker for the go-audio encoder,
// which requires seeking to patch RIFF chunk sizes on Close.
type writeSeekBuffer struct {
	data []byte
	off  int
}

func (b *writeSeekBuffer) Write(p []byte) (int, error) {
	if need := b.off + len(p); need > len(b.data) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	}

	copy(b.data[b.off:], p)
	b.off += len(p)

	return len(p), nil
}

func (b *writeSeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.off) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, fmt.Errorf("negative position")
	}

	b.off = int(pos)
	return pos, nil
}

func (b *writeSeekBuffer) Bytes() []byte { return b.data }
