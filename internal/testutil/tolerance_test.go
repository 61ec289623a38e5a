package testutil

import "testing"

func TestRequireTableNearlyEqual(t *testing.T) {
	a := EulerTable(1, 3)
	b := a.Clone()
	b[1].Mean *= 1 + 1e-12

	RequireTableNearlyEqual(t, b, a, 1e-9)
	RequireTableEqual(t, a.Clone(), a)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e308, 5e-324})
}
