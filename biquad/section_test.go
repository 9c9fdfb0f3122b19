package biquad

import (
	"math"
	"testing"
)

// testLowpass returns normalized lowpass coefficients computed inline from
// the RBJ prototype, without depending on the design package.
func testLowpass(freq, q, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha

	return Coefficients{
		B0: (1 - cw) / 2 / a0,
		B1: (1 - cw) / a0,
		B2: (1 - cw) / 2 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

func TestIdentity(t *testing.T) {
	c := Identity()

	want := Coefficients{B0: 1}
	if c != want {
		t.Fatalf("Identity() = %+v, want %+v", c, want)
	}

	if !c.IsIdentity() {
		t.Fatal("IsIdentity() = false for identity section")
	}

	lp := testLowpass(1000, 0.707, 48000)
	if lp.IsIdentity() {
		t.Fatal("IsIdentity() = true for lowpass section")
	}
}

func TestSectionIdentityPassThrough(t *testing.T) {
	s := NewSection(Identity())

	in := []float64{1, -0.5, 0.25, 0, 0.125, -1}
	for _, x := range in {
		if y := s.ProcessSample(x); y != x {
			t.Fatalf("ProcessSample(%v) = %v, want pass-through", x, y)
		}
	}
}

func TestSectionProcessBlockMatchesProcessSample(t *testing.T) {
	c := testLowpass(2000, 0.707, 48000)

	perSample := NewSection(c)
	blockwise := NewSection(c)

	input := make([]float64, 256)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * 800 * float64(i) / 48000)
	}

	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = perSample.ProcessSample(x)
	}

	got := append([]float64(nil), input...)
	blockwise.ProcessBlock(got)

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: block %v vs sample %v", i, got[i], want[i])
		}
	}
}

func TestSectionProcessBlockTo(t *testing.T) {
	c := testLowpass(2000, 0.707, 48000)

	inPlace := NewSection(c)
	toDst := NewSection(c)

	src := []float64{1, 0.5, -0.25, 0, -1, 0.75}
	dst := make([]float64, len(src))
	toDst.ProcessBlockTo(dst, src)

	buf := append([]float64(nil), src...)
	inPlace.ProcessBlock(buf)

	for i := range buf {
		if dst[i] != buf[i] {
			t.Fatalf("index %d: ProcessBlockTo %v vs ProcessBlock %v", i, dst[i], buf[i])
		}
	}
}

func TestSectionDCGain(t *testing.T) {
	// A lowpass passes DC with unity gain; after settling, a constant
	// input must come through unchanged.
	s := NewSection(testLowpass(1000, 1/math.Sqrt2, 48000))

	var y float64
	for i := 0; i < 10000; i++ {
		y = s.ProcessSample(1)
	}

	if math.Abs(y-1) > 1e-6 {
		t.Fatalf("settled DC output = %v, want 1", y)
	}
}

func TestSectionResetAndState(t *testing.T) {
	s := NewSection(testLowpass(500, 0.707, 48000))

	for i := 0; i < 16; i++ {
		s.ProcessSample(1)
	}

	state := s.State()
	if state == ([2]float64{}) {
		t.Fatal("state still zero after processing")
	}

	s.Reset()

	if got := s.State(); got != ([2]float64{}) {
		t.Fatalf("state after Reset = %v, want zeros", got)
	}

	s.SetState(state)

	if got := s.State(); got != state {
		t.Fatalf("state after SetState = %v, want %v", got, state)
	}
}
