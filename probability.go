// -*- tab-width:2 -*-

package copula

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// UniformPair holds the supports of two uniform marginals X and Y.
type UniformPair struct {
	X Support
	Y Support
}

func (p UniformPair) validate() error {
	if err := p.X.validate("x"); err != nil {
		return err
	}

	return p.Y.validate("y")
}

// sumThreshold is t = P(S <= s) for S uniform over
// [min(ax+by, ay+bx), bx+by].
func (p UniformPair) sumThreshold(s float64) float64 {
	lo := math.Min(p.X.Min+p.Y.Max, p.Y.Min+p.X.Max)

	return UniformCDF(lo, p.X.Max+p.Y.Max)(s)
}

// CopulaLowerSumUniform evaluates the copula that attains the lower
// bound on P(X+Y <= s) at marginal CDF values a and b. Where both a
// and b reach the threshold t the copula is max(a+b-1, t), elsewhere it
// is min(a, b).
func CopulaLowerSumUniform(a, b mat.Matrix, p UniformPair, s float64) (*mat.Dense, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	r, c := a.Dims()
	if br, bc := b.Dims(); br != r || bc != c {
		return nil, errors.Wrapf(ErrShape, "a is %dx%d, b is %dx%d", r, c, br, bc)
	}

	t := p.sumThreshold(s)
	out := mat.NewDense(r, c, nil)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, bv := a.At(i, j), b.At(i, j)
			if av >= t && bv >= t {
				out.Set(i, j, math.Max(av+bv-1, t))
			} else {
				out.Set(i, j, math.Min(av, bv))
			}
		}
	}

	return out, nil
}

// GridSpec is an evaluation grid over [XMin, XMax] x [YMin, YMax] with
// N points per axis.
type GridSpec struct {
	XMin, XMax float64
	YMin, YMax float64
	N          int
}

// DefaultGridSpec returns the 50x50 grid over [0,4] x [0,6].
func DefaultGridSpec() GridSpec {
	return GridSpec{XMin: 0, XMax: 4, YMin: 0, YMax: 6, N: 50} //nolint:mnd
}

// JointPDF is a joint density on a meshgrid.
type JointPDF struct {
	X   *mat.Dense
	Y   *mat.Dense
	PDF *mat.Dense
}

// Results flattens the grids into the columns X, Y and pdf.
func (j *JointPDF) Results() *Results {
	res := NewResults()
	res.Add("X", ravel(j.X))
	res.Add("Y", ravel(j.Y))
	res.Add("pdf", ravel(j.PDF))

	return res
}

// JointPDFLowerSumUniform differentiates the joint CDF built from
// CopulaLowerSumUniform on the grid g: first along axis 0 with the x
// step, then along axis 1 with the y step.
func JointPDFLowerSumUniform(p UniformPair, s float64, g GridSpec) (*JointPDF, error) {
	if g.N < 2 || !(g.XMin < g.XMax) || !(g.YMin < g.YMax) { //nolint:mnd
		return nil, errors.Wrapf(ErrParam, "grid %+v", g)
	}

	x := floats.Span(make([]float64, g.N), g.XMin, g.XMax)
	y := floats.Span(make([]float64, g.N), g.YMin, g.YMax)
	// Span can land an ulp short of the end
	x[g.N-1], y[g.N-1] = g.XMax, g.YMax
	stepX := (g.XMax - g.XMin) / float64(g.N-1)
	stepY := (g.YMax - g.YMin) / float64(g.N-1)

	gx, gy := Meshgrid(x, y)
	margX := applyCDF(gx, p.X.CDF())
	margY := applyCDF(gy, p.Y.CDF())

	joint, err := CopulaLowerSumUniform(margX, margY, p, s)
	if err != nil {
		return nil, err
	}

	pdf := Gradient(Gradient(joint, stepX, 0), stepY, 1)
	logger().La("joint pdf range", mat.Min(pdf), mat.Max(pdf))

	return &JointPDF{X: gx, Y: gy, PDF: pdf}, nil
}

// UpperProductUniform bounds P(X*Y <= s) from above over all
// couplings of uniform X and Y with non-negative supports. For any
// y > 0, P(XY <= s) <= F_Y(y) + F_X(s/y); the sum is smallest at
// y* = sqrt(s*(by-ay)/(bx-ax)). The symmetric term at x* and the
// domain edges ay, ax cap the result.
func UpperProductUniform(s []float64, p UniformPair) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	if p.X.Min < 0 || p.Y.Min < 0 {
		return nil, errors.Wrapf(ErrParam, "product bound needs non-negative supports, got %+v", p)
	}

	fx, fy := p.X.CDF(), p.Y.CDF()
	wx, wy := p.X.Width(), p.Y.Width()
	out := make([]float64, len(s))

	for i, sv := range s {
		if sv <= 0 {
			continue
		}

		yStar := math.Sqrt(sv * wy / wx)
		xStar := math.Sqrt(sv * wx / wy)

		bound := math.Min(fx(sv/yStar)+fy(yStar), fy(sv/xStar)+fx(xStar))
		bound = math.Min(bound, 1)
		bound = math.Min(bound, fx(sv/p.Y.Min))
		bound = math.Min(bound, fy(sv/p.X.Min))
		out[i] = bound
	}

	return out, nil
}

// Meshgrid returns X and Y with X[i][j] = x[j] and Y[i][j] = y[i].
func Meshgrid(x, y []float64) (*mat.Dense, *mat.Dense) {
	gx := mat.NewDense(len(y), len(x), nil)
	gy := mat.NewDense(len(y), len(x), nil)

	for i := range y {
		for j := range x {
			gx.Set(i, j, x[j])
			gy.Set(i, j, y[i])
		}
	}

	return gx, gy
}

// Gradient differentiates m along axis (0 rows, 1 columns) with
// spacing h: central differences inside, one-sided at the edges.
func Gradient(m mat.Matrix, h float64, axis int) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)

	n := r
	if axis == 1 {
		n = c
	}

	get := func(k, other int) float64 {
		if axis == 0 {
			return m.At(k, other)
		}

		return m.At(other, k)
	}
	set := func(k, other int, v float64) {
		if axis == 0 {
			out.Set(k, other, v)
		} else {
			out.Set(other, k, v)
		}
	}

	others := c
	if axis == 1 {
		others = r
	}

	for o := 0; o < others; o++ {
		for k := 0; k < n; k++ {
			switch {
			case n == 1:
				set(k, o, 0)
			case k == 0:
				set(k, o, (get(1, o)-get(0, o))/h)
			case k == n-1:
				set(k, o, (get(n-1, o)-get(n-2, o))/h)
			default:
				set(k, o, (get(k+1, o)-get(k-1, o))/(2*h)) //nolint:mnd
			}
		}
	}

	return out
}

func applyCDF(m *mat.Dense, f ModelCdf) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, m)

	return &out
}
