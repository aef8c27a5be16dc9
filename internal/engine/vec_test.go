package engine

import (
	"math"
	"testing"
)

func TestVecNorm(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 12}
	if v.Norm() != 13 {
		t.Errorf("expected norm 13, got %f", v.Norm())
	}
	if v.NormSq() != 169 {
		t.Errorf("expected squared norm 169, got %f", v.NormSq())
	}
}

func TestVecArithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	sum := a.Add(b)
	if sum != (Vec3{X: 0, Y: 2.5, Z: 5}) {
		t.Errorf("unexpected sum: %+v", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec3{X: 2, Y: 1.5, Z: 1}) {
		t.Errorf("unexpected difference: %+v", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("unexpected scale: %+v", scaled)
	}

	if a.Dot(b) != 1*-1+2*0.5+3*2 {
		t.Errorf("unexpected dot: %f", a.Dot(b))
	}
}

func TestVecIsFinite(t *testing.T) {
	if !(Vec3{X: 1, Y: 2, Z: 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{X: math.NaN()}).IsFinite() {
		t.Error("NaN component reported finite")
	}
	if (Vec3{Z: math.Inf(1)}).IsFinite() {
		t.Error("Inf component reported finite")
	}
}
