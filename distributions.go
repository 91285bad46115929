// -*- tab-width:2 -*-

package copula

// This file has the marginal cdf's and the inverse transform that
// couples two marginals through a copula.

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// ModelCdf is a function that is the Cdf of a marginal distribution.
// It maps into [0, 1] for all x.
type ModelCdf func(x float64) float64

// UniformCDF returns the CDF of a uniform random variable over [a, b].
func UniformCDF(a, b float64) ModelCdf {
	uni := distuv.Uniform{
		Min: a,
		Max: b,
	}

	return uni.CDF
}

// ExponentialCDF returns the CDF of the received power of a Rayleigh
// fading channel, an exponential random variable with rate lam.
func ExponentialCDF(lam float64) ModelCdf {
	exp := distuv.Exponential{
		Rate: lam,
	}

	return exp.CDF
}

// InvCDF inverts ExponentialCDF: it maps a uniform variate u to a
// realization of the channel power with rate lam.
func InvCDF(u, lam float64) float64 {
	return -math.Log1p(-u) / lam
}

// InvCDFEach applies InvCDF to every element of u.
func InvCDFEach(u []float64, lam float64) []float64 {
	out := make([]float64, len(u))
	for i, v := range u {
		out[i] = InvCDF(v, lam)
	}

	return out
}

// Support is the interval [Min, Max] of a uniform marginal.
type Support struct {
	Min float64
	Max float64
}

// CDF returns the marginal CDF over the support.
func (s Support) CDF() ModelCdf {
	return UniformCDF(s.Min, s.Max)
}

// Width is Max - Min.
func (s Support) Width() float64 {
	return s.Max - s.Min
}

func (s Support) validate(name string) error {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0) || s.Min >= s.Max {
		return errors.Wrapf(ErrParam, "support %s = [%g, %g]", name, s.Min, s.Max)
	}

	return nil
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return errors.Wrapf(ErrParam, "%s must be positive and finite, got %g", name, v)
	}

	return nil
}
