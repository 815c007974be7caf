// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import "testing"

type px struct{ r, g, b, a byte }

func apply(m Mode, s, d px) px {
	r, g, b, a := For(m)(s.r, s.g, s.b, s.a, d.r, d.g, d.b, d.a)
	return px{r, g, b, a}
}

func near(a, b px, tol int) bool {
	diff := func(x, y byte) bool {
		d := int(x) - int(y)
		return d >= -tol && d <= tol
	}
	return diff(a.r, b.r) && diff(a.g, b.g) && diff(a.b, b.b) && diff(a.a, b.a)
}

func TestMulDiv255Exact(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := byte((a*b + 127) / 255)
			if got := mulDiv255(byte(a), byte(b)); got != want {
				t.Fatalf("mulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestPorterDuff(t *testing.T) {
	red := px{255, 0, 0, 255}
	halfBlue := px{0, 0, 128, 128}
	green := px{0, 255, 0, 255}

	tests := []struct {
		name string
		mode Mode
		s, d px
		want px
	}{
		{"clear", ModeClear, red, green, px{}},
		{"source", ModeSource, halfBlue, green, halfBlue},
		{"over opaque", ModeOver, red, green, red},
		{"over transparent source", ModeOver, px{}, green, green},
		{"over half", ModeOver, halfBlue, green, px{0, 127, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(tt.mode, tt.s, tt.d); got != tt.want {
				t.Errorf("%v(%v, %v) = %v, want %v", tt.mode, tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestSeparableModes(t *testing.T) {
	// Opaque gray levels reduce the general formula to B(Cb, Cs).
	gray := func(v byte) px { return px{v, v, v, 255} }
	s, d := gray(51), gray(204) // Cs = 0.2, Cb = 0.8

	tests := []struct {
		mode Mode
		want float32
	}{
		{ModeMultiply, 0.16},
		{ModeScreen, 0.84},
		{ModeOverlay, 0.68}, // 1 - 2*(1-0.8)*(1-0.2)
		{ModeDarken, 0.2},
		{ModeLighten, 0.8},
		{ModeColorDodge, 1},
		{ModeColorBurn, 0},
		{ModeHardLight, 0.32},
		{ModeSoftLight, 0.704}, // 0.8 - 0.6*0.8*0.2
		{ModeDifference, 0.6},
		{ModeExclusion, 0.68},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := apply(tt.mode, s, d)
			want := gray(toByte(tt.want))
			if !near(got, want, 1) {
				t.Errorf("%v = %v, want %v", tt.mode, got, want)
			}
		})
	}
}

func TestSeparableTransparency(t *testing.T) {
	d := px{10, 20, 30, 200}
	for m := ModeMultiply; m <= ModeLuminosity; m++ {
		if got := apply(m, px{}, d); got != d {
			t.Errorf("%v with transparent source = %v, want destination %v", m, got, d)
		}
		s := px{40, 50, 60, 100}
		if got := apply(m, s, px{}); got != s {
			t.Errorf("%v onto transparent destination = %v, want source %v", m, got, s)
		}
	}
}

func TestAlphaIsSourceOverForAllBlendModes(t *testing.T) {
	s := px{60, 30, 10, 128}
	d := px{20, 100, 50, 192}
	want := apply(ModeOver, s, d).a
	for m := ModeMultiply; m <= ModeLuminosity; m++ {
		if got := apply(m, s, d).a; int(got)-int(want) > 1 || int(want)-int(got) > 1 {
			t.Errorf("%v alpha = %d, want %d", m, got, want)
		}
	}
}

func TestRow(t *testing.T) {
	dst := []byte{0, 255, 0, 255, 0, 0, 255, 255}
	src := []byte{255, 0, 0, 255, 0, 0, 0, 0}
	Row(dst, src, For(ModeOver))
	want := []byte{255, 0, 0, 255, 0, 0, 255, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("Row result = %v, want %v", dst, want)
		}
	}
}

func TestModeString(t *testing.T) {
	if got := ModeColorDodge.String(); got != "color-dodge" {
		t.Errorf("String() = %q", got)
	}
	if got := Mode(200).String(); got != "unknown" {
		t.Errorf("String() of invalid mode = %q", got)
	}
}

func BenchmarkSeparableRow(b *testing.B) {
	dst := make([]byte, 4*1024)
	src := make([]byte, 4*1024)
	for i := range src {
		src[i] = byte(i)
		dst[i] = byte(255 - i)
	}
	f := For(ModeSoftLight)
	b.SetBytes(int64(len(dst)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Row(dst, src, f)
	}
}
