package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"zero", 0, 0},
		{"positive max", 1.0, 32767},
		{"negative max", -1.0, -32767},
		{"half", 0.5, 16383},
		{"clamp above", 2.5, 32767},
		{"clamp below", -2.5, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int16
		want float32
	}{
		{"zero", 0, 0},
		{"min", -32768, -1.0},
		{"positive", 16384, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int16ToFloat32(tt.in); got != tt.want {
				t.Errorf("Int16ToFloat32(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt16SliceToFloat32(t *testing.T) {
	t.Parallel()

	in := []int16{0, -32768, 16384}
	got := Int16SliceToFloat32(in)

	if len(got) != len(in) {
		t.Fatalf("Int16SliceToFloat32 returned %d samples, want %d", len(got), len(in))
	}

	want := []float32{0, -1.0, 0.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRoundTripPreservesSign(t *testing.T) {
	t.Parallel()

	for _, v := range []float32{-0.9, -0.1, 0.1, 0.9} {
		q := Float32ToInt16(v)
		back := Int16ToFloat32(q)

		if (v > 0) != (back > 0) {
			t.Errorf("round trip of %v flipped sign: %v", v, back)
		}
	}
}
