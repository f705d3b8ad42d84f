package blend

import (
	"testing"
)

// TestDiv255 checks the shift formula against integer division for every
// product of two bytes.
func TestDiv255(t *testing.T) {
	for x := uint32(0); x <= 255*255; x++ {
		if got, want := Div255(x), x/255; got != want {
			t.Fatalf("Div255(%d) = %d, want %d", x, got, want)
		}
	}
}

// TestLerpEndpoints verifies alpha 0 keeps the destination and alpha 255
// yields the source for every channel pair.
func TestLerpEndpoints(t *testing.T) {
	for d := 0; d < 256; d++ {
		for s := 0; s < 256; s++ {
			if got := Lerp(uint8(d), uint8(s), 0); got != uint8(d) {
				t.Fatalf("Lerp(%d, %d, 0) = %d, want %d", d, s, got, d)
			}
			if got := Lerp(uint8(d), uint8(s), 255); got != uint8(s) {
				t.Fatalf("Lerp(%d, %d, 255) = %d, want %d", d, s, got, s)
			}
		}
	}
}

func TestLerpMonotonic(t *testing.T) {
	prev := Lerp(0, 255, 0)
	for a := 1; a < 256; a++ {
		got := Lerp(0, 255, uint8(a))
		if got < prev {
			t.Fatalf("Lerp(0, 255, %d) = %d, smaller than previous %d", a, got, prev)
		}
		prev = got
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		alpha  uint8
		factor uint32
		want   uint8
	}{
		{200, 1 << 16, 200},
		{200, 1 << 15, 100},
		{200, 2 << 16, 255},
		{0, 4 << 16, 0},
	}

	for _, tt := range tests {
		if got := Scale(tt.alpha, tt.factor); got != tt.want {
			t.Errorf("Scale(%d, %#x) = %d, want %d", tt.alpha, tt.factor, got, tt.want)
		}
	}
}

func TestLuma(t *testing.T) {
	if got := Luma(255, 255, 255); got != 255 {
		t.Errorf("Luma(white) = %d, want 255", got)
	}
	if got := Luma(0, 0, 0); got != 0 {
		t.Errorf("Luma(black) = %d, want 0", got)
	}
	if Luma(0, 255, 0) <= Luma(255, 0, 0) {
		t.Error("green should weigh more than red")
	}
}
