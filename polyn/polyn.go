// Package polyn is for arithmetic with cubic polynomials in one variable.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/tphakala/simd/f64"
	"honnef.co/go/curve"
)

// T traces to the geometry tracer.
func T() tracing.Trace {
	return tracing.Select("geometry")
}

// relativeEpsilon is the ratio below which a leading coefficient is
// considered vanishing compared to the remaining ones.
const relativeEpsilon = 1e-12

// Cubic is a polynomial of degree 3 or less,
//
//	p(t) = a t³ + b t² + c t + d
//
// Coefficients are stored highest term first: Cubic{a, b, c, d}.
type Cubic [4]float64

// New creates a cubic polynomial from its coefficients, highest term first.
func New(a, b, c, d float64) Cubic {
	return Cubic{a, b, c, d}
}

// Constant creates a polynomial consisting of just a constant term.
func Constant(d float64) Cubic {
	return Cubic{0, 0, 0, d}
}

// Eval evaluates p at t.
func (p Cubic) Eval(t float64) float64 {
	powers := [4]float64{t * t * t, t * t, t, 1}
	return f64.DotProduct(p[:], powers[:])
}

// Derivative returns p'.
func (p Cubic) Derivative() Cubic {
	return Cubic{0, 3 * p[0], 2 * p[1], p[2]}
}

// Add adds two polynomials. Returns a new polynomial.
func (p Cubic) Add(q Cubic) Cubic {
	return Cubic{p[0] + q[0], p[1] + q[1], p[2] + q[2], p[3] + q[3]}
}

// Scaled returns p multiplied by a constant k.
func (p Cubic) Scaled(k float64) Cubic {
	return Cubic{p[0] * k, p[1] * k, p[2] * k, p[3] * k}
}

// IsZero checks whether all coefficients are 0.
func (p Cubic) IsZero() bool {
	return p[0] == 0 && p[1] == 0 && p[2] == 0 && p[3] == 0
}

// Degree returns the effective degree of p. Leading coefficients which are
// negligible compared to the remaining ones do not count. The zero
// polynomial has degree -1.
func (p Cubic) Degree() int {
	for i := 0; i < 4; i++ {
		lead := math.Abs(p[i])
		if lead == 0 {
			continue
		}
		rest := 0.0
		for j := i + 1; j < 4; j++ {
			rest = math.Max(rest, math.Abs(p[j]))
		}
		if lead > relativeEpsilon*rest {
			return 3 - i
		}
	}
	if p[3] != 0 {
		return 0
	}
	return -1
}

// Roots finds the real roots of p, in ascending order. Multiple roots are
// reported once. Constant polynomials, including the zero polynomial (for
// which every t is a root), have no roots.
func (p Cubic) Roots() []float64 {
	var roots []float64
	switch p.Degree() {
	case 3:
		r, n := curve.SolveCubic(p[3], p[2], p[1], p[0])
		roots = append(roots, r[:n]...)
	case 2:
		r, n := curve.SolveQuadratic(p[3], p[2], p[1])
		roots = append(roots, r[:n]...)
	case 1:
		roots = []float64{-p[3] / p[2]}
	default:
		return nil
	}
	polished := roots[:0]
	for _, r := range roots {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			T().Debugf("dropping root %g of %s", r, p)
			continue
		}
		polished = append(polished, p.polish(r))
	}
	sort.Float64s(polished)
	return dedup(polished)
}

// RootsIn finds the real roots of p within [lo,hi], in ascending order.
// Roots at most tolerance outside the interval are clamped into it.
func (p Cubic) RootsIn(lo, hi, tolerance float64) []float64 {
	var in []float64
	for _, r := range p.Roots() {
		if r < lo-tolerance || r > hi+tolerance {
			continue
		}
		in = append(in, math.Min(hi, math.Max(lo, r)))
	}
	return dedup(in)
}

// Extrema returns the values of p at its interval end points and at its
// stationary points within [lo,hi], as minimum and maximum.
func (p Cubic) Extrema(lo, hi float64) (float64, float64) {
	min, max := p.Eval(lo), p.Eval(lo)
	candidates := append(p.Derivative().RootsIn(lo, hi, 0), hi)
	for _, t := range candidates {
		v := p.Eval(t)
		min, max = math.Min(min, v), math.Max(max, v)
	}
	return min, max
}

// polish refines a root by Newton steps, keeping r if a step does not
// improve the residual.
func (p Cubic) polish(r float64) float64 {
	d := p.Derivative()
	for i := 0; i < 2; i++ {
		slope := d.Eval(r)
		if slope == 0 {
			break
		}
		next := r - p.Eval(r)/slope
		if math.IsNaN(next) || math.Abs(p.Eval(next)) >= math.Abs(p.Eval(r)) {
			break
		}
		r = next
	}
	return r
}

// String creates a readable string representation for a polynomial.
func (p Cubic) String() string {
	return fmt.Sprintf("%g t³ %+g t² %+g t %+g", p[0], p[1], p[2], p[3])
}

// dedup removes consecutive duplicates from a sorted slice.
func dedup(roots []float64) []float64 {
	if len(roots) < 2 {
		return roots
	}
	out := roots[:1]
	for _, r := range roots[1:] {
		if r != out[len(out)-1] {
			out = append(out, r)
		}
	}
	return out
}
