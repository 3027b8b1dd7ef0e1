package lander

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestOscillationFactorProperties(t *testing.T) {
	for _, p := range []float64{0.5, 2, 7, 13.25} {
		for i := 0; i <= 200; i++ {
			tm := float64(i) * 0.173

			f, ok := OscillationFactor(tm, p)
			if !ok {
				t.Fatalf("period %v should move", p)
			}
			if f < 0 || f > 1 {
				t.Fatalf("factor(%v, %v) = %v outside [0,1]", tm, p, f)
			}

			next, _ := OscillationFactor(tm+p, p)
			if math.Abs(f-next) > 1e-9 {
				t.Errorf("factor not periodic at t=%v p=%v: %v vs %v", tm, p, f, next)
			}

			half, _ := OscillationFactor(tm+p/2, p)
			if math.Abs(f+half-1) > 1e-9 {
				t.Errorf("factor not symmetric at t=%v p=%v: %v + %v", tm, p, f, half)
			}
		}

		for k := 0; k < 5; k++ {
			f, _ := OscillationFactor(float64(k)*p, p)
			if math.Abs(f-0.5) > 1e-9 {
				t.Errorf("factor at cycle %d of period %v = %v, want 0.5", k, p, f)
			}
		}
	}
}

func TestOscillatorZeroPeriodStays(t *testing.T) {
	base := core.V(3, 4)
	for _, p := range []float64{0, 1e-12, -1} {
		o := NewOscillator(base, core.V(10, 10), p)
		for _, tm := range []float64{0, 0.3, 1, 100} {
			if got := o.Position(tm); got != base {
				t.Errorf("period %v t=%v: position %+v, want baseline", p, tm, got)
			}
		}
	}
}

func TestOscillatorPosition(t *testing.T) {
	o := NewOscillator(core.V(0, 10), core.V(0, 4), 4)

	tests := []struct {
		t    float64
		want core.Vec2
	}{
		{0, core.V(0, 12)},
		{1, core.V(0, 14)},
		{2, core.V(0, 12)},
		{3, core.V(0, 10)},
	}
	for _, tt := range tests {
		got := o.Position(tt.t)
		if !core.ApproxEqual(got.X, tt.want.X, 1e-9) || !core.ApproxEqual(got.Y, tt.want.Y, 1e-9) {
			t.Errorf("Position(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
	if o.Baseline() != core.V(0, 10) {
		t.Errorf("baseline changed: %+v", o.Baseline())
	}
}
