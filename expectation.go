// -*- tab-width:2 -*-

package copula

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Metric is a cost of two exponentially distributed channel powers X
// and Y together with its closed-form bounds.
type Metric interface {
	Name() string
	Validate() error
	// Cost evaluates the cost at a realization x, y.
	Cost(x, y float64) float64
	// Rates returns the rate parameters of the marginals of X and Y.
	Rates() (lamX, lamY float64)
	// Lower is the expectation under comonotonic coupling.
	Lower() float64
	// Indep is the expectation under independence.
	Indep() float64
}

// Bounds is the ordered triple Lower <= Indep <= Upper for one
// parameter set. UpperAbsErr is the quadrature error estimate of Upper.
type Bounds struct {
	Lower       float64
	Indep       float64
	Upper       float64
	UpperAbsErr float64
}

// Upper integrates the cost over the countermonotonic coupling
// x = InvCDF(u, lamX), y = InvCDF(1-u, lamY), u in (0, 1). For the
// submodular costs in this package that is the largest expectation
// over all couplings with the given marginals.
func Upper(m Metric, cfg *Config) (Estimate, error) {
	if err := m.Validate(); err != nil {
		return Estimate{}, err
	}

	lamX, lamY := m.Rates()
	cost := func(u float64) float64 {
		x := InvCDF(u, lamX)
		y := -math.Log(u) / lamY // InvCDF(1-u, lamY) without forming 1-u

		return m.Cost(x, y)
	}

	est, err := Integrate(cost, 0, 1, cfg)
	if err != nil {
		return est, errors.Wrapf(err, "upper %s bound", m.Name())
	}

	return est, nil
}

// Evaluate computes the bound triple of m.
func Evaluate(m Metric, cfg *Config) (Bounds, error) {
	if err := m.Validate(); err != nil {
		return Bounds{}, err
	}

	up, err := Upper(m, cfg)
	if err != nil {
		return Bounds{}, err
	}

	return Bounds{
		Lower:       m.Lower(),
		Indep:       m.Indep(),
		Upper:       up.Value,
		UpperAbsErr: up.AbsErr,
	}, nil
}

// EvaluateEach computes the bound triple of every metric, using up to
// cfg.Workers goroutines. The first error stops the batch.
func EvaluateEach(ms []Metric, cfg *Config) ([]Bounds, error) {
	cfg = orDefault(cfg)
	out := make([]Bounds, len(ms))

	err := forEach(len(ms), cfg.Workers, func(i int) error {
		b, err := Evaluate(ms[i], cfg)
		if err != nil {
			return errors.Wrapf(err, "element %d", i)
		}

		out[i] = b

		return nil
	})

	return out, err
}

// LowerEach evaluates the comonotonic closed form per element.
func LowerEach(ms []Metric) []float64 {
	out := make([]float64, len(ms))
	for i, m := range ms {
		out[i] = m.Lower()
	}

	return out
}

// IndepEach evaluates the independence closed form per element, each
// element picking its own branch.
func IndepEach(ms []Metric) []float64 {
	out := make([]float64, len(ms))
	for i, m := range ms {
		out[i] = m.Indep()
	}

	return out
}

// UpperEach repeats the upper-bound integration per element.
func UpperEach(ms []Metric, cfg *Config) ([]Estimate, error) {
	cfg = orDefault(cfg)
	out := make([]Estimate, len(ms))

	err := forEach(len(ms), cfg.Workers, func(i int) error {
		est, err := Upper(ms[i], cfg)
		out[i] = est

		if err != nil {
			return errors.Wrapf(err, "element %d", i)
		}

		return nil
	})

	return out, err
}

// forEach runs fn for 0..n-1, serially or on a bounded errgroup.
func forEach(n, workers int, fn func(i int) error) error {
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil //nolint:nilerr // the group already holds the first error
			}

			return fn(i)
		})
	}

	return g.Wait()
}

// broadcast returns the common length of the columns, each column
// having that length or length 1.
func broadcast(cols ...[]float64) (int, error) {
	n := 1

	for _, c := range cols {
		switch {
		case len(c) == 0:
			return 0, errors.Wrap(ErrShape, "empty parameter column")
		case len(c) == 1:
		case n == 1:
			n = len(c)
		case len(c) != n:
			return 0, errors.Wrapf(ErrShape, "cannot broadcast length %d against %d", len(c), n)
		}
	}

	return n, nil
}

func at(col []float64, i int) float64 {
	if len(col) == 1 {
		return col[0]
	}

	return col[i]
}
