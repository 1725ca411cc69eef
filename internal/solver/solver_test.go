// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package solver

import (
	"errors"
	"math"
	"testing"
)

func TestSolveLinear(t *testing.T) {
	// 2x + 1 = 0
	f := func(x []float64) ([]float64, error) {
		return []float64{2.*x[0] + 1.}, nil
	}
	got, err := Solve(f, []float64{10.}, Options{})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if math.Abs(got[0]+0.5) > 1e-8 {
		t.Fatalf("root = %v, want -0.5", got[0])
	}
}

func TestSolveNonlinearSystem(t *testing.T) {
	// x^2 + y^2 = 2, x - y = 0 has the root (1, 1) near the start point.
	f := func(x []float64) ([]float64, error) {
		return []float64{
			x[0]*x[0] + x[1]*x[1] - 2.,
			x[0] - x[1],
		}, nil
	}
	got, err := Solve(f, []float64{2., 0.5}, Options{})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if math.Abs(got[0]-1.) > 1e-6 || math.Abs(got[1]-1.) > 1e-6 {
		t.Fatalf("root = %v, want (1, 1)", got)
	}
}

func TestSolveNoConvergence(t *testing.T) {
	// A residual that never vanishes.
	f := func(x []float64) ([]float64, error) {
		return []float64{math.Exp(-x[0]*x[0]) + 1.}, nil
	}
	_, err := Solve(f, []float64{0.1}, Options{MaxIter: 10})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence, got %v", err)
	}
}

func TestSolvePropagatesEvalError(t *testing.T) {
	wantErr := errors.New("model blew up")
	f := func(x []float64) ([]float64, error) {
		return nil, wantErr
	}
	if _, err := Solve(f, []float64{1.}, Options{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected model error, got %v", err)
	}
}

func TestSolveEmptyStart(t *testing.T) {
	f := func(x []float64) ([]float64, error) { return nil, nil }
	if _, err := Solve(f, nil, Options{}); err == nil {
		t.Fatal("expected error for empty initial point")
	}
}

func TestSolveSizeMismatch(t *testing.T) {
	f := func(x []float64) ([]float64, error) {
		return []float64{0., 0.}, nil
	}
	if _, err := Solve(f, []float64{1.}, Options{}); err == nil {
		t.Fatal("expected error for residual size mismatch")
	}
}
