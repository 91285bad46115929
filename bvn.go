// -*- tab-width:2 -*-

package copula

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gauss-Legendre half rules (6, 12 and 20 points) used by the
// Drezner-Wesolowsky / Genz bivariate normal algorithm.
var (
	bvnWeights = [3][]float64{
		{0.1713244923791705, 0.3607615730481384, 0.4679139345726904},
		{
			0.04717533638651177, 0.1069393259953183, 0.1600783285433464,
			0.2031674267230659, 0.2334925365383547, 0.2491470458134029,
		},
		{
			0.01761400713915212, 0.04060142980038694, 0.06267204833410906,
			0.08327674157670475, 0.1019301198172404, 0.1181945319615184,
			0.1316886384491766, 0.1420961093183821, 0.1491729864726037,
			0.1527533871307259,
		},
	}
	bvnNodes = [3][]float64{
		{0.9324695142031522, 0.6612093864662647, 0.2386191860831970},
		{
			0.9815606342467191, 0.9041172563704750, 0.7699026741943050,
			0.5873179542866171, 0.3678314989981802, 0.1252334085114692,
		},
		{
			0.9931285991850949, 0.9639719272779138, 0.9122344282513259,
			0.8391169718222188, 0.7463319064601508, 0.6360536807265150,
			0.5108670019508271, 0.3737060887154196, 0.2277858511416451,
			0.07652652113349733,
		},
	}
)

func phi(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// bivariateNormalCDF returns P(X <= h, Y <= k) for standard normals
// with correlation r.
func bivariateNormalCDF(h, k, r float64) float64 {
	return bivariateNormalUpper(-h, -k, r)
}

// bivariateNormalUpper returns P(X > h, Y > k), following Genz (2004)
// "Numerical computation of rectangular bivariate and trivariate
// normal and t probabilities".
func bivariateNormalUpper(h, k, r float64) float64 {
	switch {
	case math.IsInf(h, 1) || math.IsInf(k, 1):
		return 0
	case math.IsInf(h, -1):
		if math.IsInf(k, -1) {
			return 1
		}

		return phi(-k)
	case math.IsInf(k, -1):
		return phi(-h)
	}

	var ng int

	switch ar := math.Abs(r); {
	case ar < 0.3: //nolint:mnd
		ng = 0
	case ar < 0.75: //nolint:mnd
		ng = 1
	default:
		ng = 2
	}

	w, x := bvnWeights[ng], bvnNodes[ng]
	hk := h * k
	bvn := 0.0

	if math.Abs(r) < 0.925 { //nolint:mnd
		hs := (h*h + k*k) / 2   //nolint:mnd
		asr := math.Asin(r) / 2 //nolint:mnd

		for i := range x {
			for _, sign := range []float64{-1, 1} {
				sn := math.Sin(asr * (1 + sign*x[i]))
				bvn += w[i] * math.Exp((sn*hk-hs)/(1-sn*sn))
			}
		}

		bvn = bvn*asr/(2*math.Pi) + phi(-h)*phi(-k)

		return clamp01(bvn)
	}

	if r < 0 {
		k = -k
		hk = -hk
	}

	if math.Abs(r) < 1 {
		as := 1 - r*r
		a := math.Sqrt(as)
		bs := (h - k) * (h - k)
		c := (4 - hk) / 8   //nolint:mnd
		d := (12 - hk) / 80 //nolint:mnd

		if asr := -(bs/as + hk) / 2; asr > -100 { //nolint:mnd
			bvn = a * math.Exp(asr) * (1 - c*(bs-as)*(1-d*bs)/3 + c*d*as*as) //nolint:mnd
		}

		if hk > -100 { //nolint:mnd
			b := math.Sqrt(bs)
			sp := math.Sqrt(2*math.Pi) * phi(-b/a)
			bvn -= math.Exp(-hk/2) * sp * b * (1 - c*bs*(1-d*bs)/3) //nolint:mnd
		}

		a /= 2
		sum := 0.0

		for i := range x {
			for _, sign := range []float64{-1, 1} {
				xs := (a + sign*a*x[i]) * (a + sign*a*x[i])
				rs := math.Sqrt(1 - xs)
				asr := -(bs/xs + hk) / 2                      //nolint:mnd
				sp := 1 + c*xs*(1+5*d*xs)                     //nolint:mnd
				ep := math.Exp(-hk*xs/(2*(1+rs)*(1+rs))) / rs //nolint:mnd
				sum += w[i] * math.Exp(asr) * (sp - ep)
			}
		}

		bvn = (a*sum - bvn) / (2 * math.Pi)
	}

	switch {
	case r > 0:
		bvn += phi(-math.Max(h, k))
	case h >= k:
		bvn = -bvn
	default:
		var l float64
		if h < 0 {
			l = phi(k) - phi(h)
		} else {
			l = phi(-h) - phi(-k)
		}

		bvn = l - bvn
	}

	return clamp01(bvn)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
