package encode

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// checkWAVHeader validates the canonical 44-byte mono PCM16 header layout.
func checkWAVHeader(t *testing.T, data []byte, sampleRate, numSamples int) {
	t.Helper()

	if len(data) < 44 {
		t.Fatalf("WAV output %d bytes, want at least a 44-byte header", len(data))
	}

	if !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		t.Fatal("missing RIFF/WAVE markers")
	}

	if format := binary.LittleEndian.Uint16(data[20:22]); format != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", format)
	}
	if ch := binary.LittleEndian.Uint16(data[22:24]); ch != 1 {
		t.Errorf("channels = %d, want 1", ch)
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != uint32(sampleRate) {
		t.Errorf("sample rate = %d, want %d", rate, sampleRate)
	}
	if bits := binary.LittleEndian.Uint16(data[34:36]); bits != 16 {
		t.Errorf("bits per sample = %d, want 16", bits)
	}

	if len(data) != 44+numSamples*2 {
		t.Errorf("WAV output %d bytes, want %d", len(data), 44+numSamples*2)
	}
}

func TestEncode_WAVRaw(t *testing.T) {
	t.Parallel()

	samples := testSamples(1000)

	data, err := Encode(samples, 24000, WAV, Options{Streaming: false})
	if err != nil {
		t.Fatalf("Encode(WAV) error: %v", err)
	}

	checkWAVHeader(t, data, 24000, len(samples))

	// Payload is the samples verbatim, little-endian.
	for i, s := range samples {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2:]))
		if got != s {
			t.Fatalf("payload sample %d = %d, want %d", i, got, s)
		}
	}
}

func TestEncode_WAVRawSizes(t *testing.T) {
	t.Parallel()

	samples := testSamples(500)

	data, err := Encode(samples, 24000, WAV, Options{})
	if err != nil {
		t.Fatalf("Encode(WAV) error: %v", err)
	}

	riffSize := binary.LittleEndian.Uint32(data[4:8])
	dataSize := binary.LittleEndian.Uint32(data[40:44])

	if want := uint32(len(samples) * 2); dataSize != want {
		t.Errorf("data chunk size = %d, want %d", dataSize, want)
	}
	if want := 36 + uint32(len(samples)*2); riffSize != want {
		t.Errorf("RIFF size = %d, want %d", riffSize, want)
	}
}

func TestEncode_WAVStreaming(t *testing.T) {
	t.Parallel()

	samples := testSamples(2400)

	data, err := Encode(samples, 24000, WAV, Options{Streaming: true})
	if err != nil {
		t.Fatalf("Encode(WAV, streaming) error: %v", err)
	}

	if len(data) < 44 {
		t.Fatalf("streaming WAV output %d bytes, too short", len(data))
	}
	if !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		t.Fatal("streaming WAV missing RIFF/WAVE markers")
	}
}

func TestEncode_WAVRawEmpty(t *testing.T) {
	t.Parallel()

	data, err := Encode(nil, 24000, WAV, Options{})
	if err != nil {
		t.Fatalf("Encode(WAV, empty) error: %v", err)
	}

	checkWAVHeader(t, data, 24000, 0)
}

func TestWriteSeekBuffer(t *testing.T) {
	t.Parallel()

	var b writeSeekBuffer

	if _, err := b.Write([]byte("hello world")); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	// Seek back and patch, the way the WAV encoder fixes up RIFF sizes.
	if _, err := b.Seek(6, 0); err != nil {
		t.Fatalf("Seek error: %v", err)
	}
	if _, err := b.Write([]byte("WORLD")); err != nil {
		t.Fatalf("Write after seek error: %v", err)
	}

	if got := string(b.Bytes()); got != "hello WORLD" {
		t.Errorf("buffer = %q, want %q", got, "hello WORLD")
	}

	if _, err := b.Seek(-100, 0); err == nil {
		t.Error("Seek to negative position succeeded, want error")
	}
}

func BenchmarkEncodeWAVRaw(b *testing.B) {
	samples := testSamples(24000)

	b.ReportAllocs()

	for b.Loop() {
		encodeWAVRaw(samples, 24000)
	}
}
