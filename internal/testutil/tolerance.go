// Package testutil holds assertions and fixtures shared by package tests.
package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-neutron/tally"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireTableEqual fails t if got differs from want in any field.
func RequireTableEqual(t *testing.T, got, want tally.Table) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

// RequireTableNearlyEqual fails t if any field of got differs from want by
// more than the relative tolerance rel.
func RequireTableNearlyEqual(t *testing.T, got, want tally.Table, rel float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(rel, 0)); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}
