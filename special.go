// -*- tab-width:2 -*-

package copula

import (
	"math"

	sf "github.com/jtejido/ggsl/specfunc"
	"github.com/jtejido/marcum"
	"gonum.org/v1/gonum/stat/distuv"
)

// Domain limits of the Marcum Q implementation, beyond them the
// non-central chi-squared CDF uses its normal approximation.
const (
	marcumMaxOrder = 10000.0
	marcumMaxArg   = 10000.0
)

// Ei is the exponential integral Ei(x), x != 0.
func Ei(x float64) float64 {
	return sf.Expint_Ei(x)
}

// ExpTimesExpi returns exp(x)*Ei(-x). For x > 0 it is evaluated as
// -exp(x)*E1(x) with the scaled E1 so large x neither overflows nor
// underflows.
func ExpTimesExpi(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	case math.IsInf(x, 1):
		return 0
	case x > 0:
		return -sf.Expint_E1_scaled(x)
	default:
		return math.Exp(x) * sf.Expint_Ei(-x)
	}
}

// NonCentralChi2 is a non-central chi-squared distribution with DF
// degrees of freedom and non-centrality NC, scaled by Scale.
type NonCentralChi2 struct {
	DF    float64
	NC    float64
	Scale float64
}

func (d NonCentralChi2) scale() float64 {
	if d.Scale == 0 {
		return 1
	}

	return d.Scale
}

// CDF computes P(X <= x) as 1 - Q_{DF/2}(sqrt(NC), sqrt(x/Scale)).
func (d NonCentralChi2) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}

	if math.IsInf(x, 1) {
		return 1
	}

	z := x / d.scale()
	order := d.DF / 2 //nolint:mnd
	a := d.NC / 2     //nolint:mnd
	b := z / 2        //nolint:mnd

	if order < 1 || order > marcumMaxOrder || a > marcumMaxArg || b > marcumMaxArg {
		// mean k+nc, variance 2(k+2nc)
		norm := distuv.Normal{
			Mu:    d.DF + d.NC,
			Sigma: math.Sqrt(2 * (d.DF + 2*d.NC)), //nolint:mnd
		}

		return norm.CDF(z)
	}

	return 1 - marcum.MarcumQModified(order, a, b)
}

// Prob computes the density at x.
func (d NonCentralChi2) Prob(x float64) float64 {
	if x <= 0 {
		return 0
	}

	sc := d.scale()
	z := x / sc

	if d.NC == 0 {
		return distuv.ChiSquared{K: d.DF}.Prob(z) / sc
	}

	nu := d.DF/2 - 1 //nolint:mnd
	w := math.Sqrt(d.NC * z)
	logPre := -(z+d.NC)/2 + w + (d.DF/4-0.5)*math.Log(z/d.NC) - math.Ln2 //nolint:mnd

	return math.Exp(logPre) * sf.Bessel_Inu_scaled(nu, w) / sc
}

// nearRatio is the relative distance below which two arguments of
// expiQuotient are treated as one.
const nearRatio = 1e-6

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= nearRatio*math.Max(math.Abs(a), math.Abs(b))
}

// expiQuotient is (b*E(a) - a*E(b))/(b - a) with E = ExpTimesExpi. It
// is symmetric in a and b with limit (1-a)E(a) - 1 at b = a. Close to
// that line the difference quotient cancels, so the limit is taken at
// the midpoint instead, which is second order accurate.
func expiQuotient(a, b float64) float64 {
	switch {
	case a == b:
		return (1-a)*ExpTimesExpi(a) - 1
	case nearlyEqual(a, b):
		m := (a + b) / 2 //nolint:mnd

		return (1-m)*ExpTimesExpi(m) - 1
	default:
		return (b*ExpTimesExpi(a) - a*ExpTimesExpi(b)) / (b - a)
	}
}
