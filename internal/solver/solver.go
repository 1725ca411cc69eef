// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package solver finds roots of small nonlinear systems. The design and
// propulsion models close their loops by driving a handful of residuals
// to zero (mass-mission adaptation, mission off-design, electrofan air
// flow matching), so a damped Newton iteration with a finite-difference
// Jacobian is all that is needed.
package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned when the iteration does not reach the
// requested tolerance within the iteration budget.
var ErrNoConvergence = errors.New("solver: convergence problem")

// Func evaluates the residual vector at x. The returned slice must have
// the same length as x.
type Func func(x []float64) ([]float64, error)

// Options tunes the Newton iteration. The zero value selects defaults.
type Options struct {
	// Tol is the residual infinity-norm at which the iteration stops.
	Tol float64
	// MaxIter bounds the number of Newton steps.
	MaxIter int
	// RelStep scales the finite-difference perturbation.
	RelStep float64
}

func (o Options) withDefaults() Options {
	if o.Tol <= 0 {
		o.Tol = 1e-8
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 100
	}
	if o.RelStep <= 0 {
		o.RelStep = 1e-7
	}
	return o
}

// Solve drives f to zero starting from x0 and returns the root.
// The step is damped: it is halved until the residual norm decreases,
// which keeps the iteration inside the validity domain of the
// statistical models it is applied to.
func Solve(f Func, x0 []float64, opt Options) ([]float64, error) {
	opt = opt.withDefaults()
	n := len(x0)
	if n == 0 {
		return nil, fmt.Errorf("solver: empty initial point")
	}

	x := append([]float64(nil), x0...)
	res, err := f(x)
	if err != nil {
		return nil, err
	}
	if len(res) != n {
		return nil, fmt.Errorf("solver: residual size %d does not match %d unknowns", len(res), n)
	}

	jac := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	step := mat.NewVecDense(n, nil)

	for iter := 0; iter < opt.MaxIter; iter++ {
		norm := infNorm(res)
		if norm <= opt.Tol {
			return x, nil
		}

		if err := fillJacobian(jac, f, x, res, opt.RelStep); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			rhs.SetVec(i, -res[i])
		}
		if err := step.SolveVec(jac, rhs); err != nil {
			return nil, fmt.Errorf("solver: singular jacobian: %w", ErrNoConvergence)
		}

		// Damped line search on the residual norm.
		lambda := 1.
		var next []float64
		var nextRes []float64
		for {
			next = make([]float64, n)
			for i := range next {
				next[i] = x[i] + lambda*step.AtVec(i)
			}
			nextRes, err = f(next)
			if err == nil && infNorm(nextRes) < norm {
				break
			}
			lambda *= 0.5
			if lambda < 1e-4 {
				if err != nil {
					return nil, err
				}
				// Accept the tiny step; stagnation is caught by MaxIter.
				break
			}
		}
		x = next
		res = nextRes
	}

	if infNorm(res) <= opt.Tol {
		return x, nil
	}
	return nil, ErrNoConvergence
}

func fillJacobian(jac *mat.Dense, f Func, x, res []float64, relStep float64) error {
	n := len(x)
	xp := make([]float64, n)
	for j := 0; j < n; j++ {
		copy(xp, x)
		h := relStep * math.Max(math.Abs(x[j]), 1.)
		xp[j] += h
		rp, err := f(xp)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			jac.Set(i, j, (rp[i]-res[i])/h)
		}
	}
	return nil
}

func infNorm(v []float64) float64 {
	m := 0.
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}
