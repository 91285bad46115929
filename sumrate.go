// -*- tab-width:2 -*-

package copula

import (
	"math"
)

// SumRate is the sum rate log2(1 + SNRX*x + SNRY*y) of two users with
// channel powers of rates LamX and LamY.
type SumRate struct {
	LamX float64
	LamY float64
	SNRX float64
	SNRY float64
}

var _ Metric = SumRate{}

// Name is used in errors and logs.
func (m SumRate) Name() string { return "sum-rate" }

// Validate checks that all parameters are positive.
func (m SumRate) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{{"lam_x", m.LamX}, {"lam_y", m.LamY}, {"snr_x", m.SNRX}, {"snr_y", m.SNRY}} {
		if err := positive(p.name, p.v); err != nil {
			return err
		}
	}

	return nil
}

// Cost is the instantaneous sum rate in bits.
func (m SumRate) Cost(x, y float64) float64 {
	return math.Log1p(m.SNRX*x+m.SNRY*y) / math.Ln2
}

// Rates returns LamX, LamY.
func (m SumRate) Rates() (float64, float64) { return m.LamX, m.LamY }

// Lower is LowerSumRate.
func (m SumRate) Lower() float64 { return LowerSumRate(m.LamX, m.LamY, m.SNRX, m.SNRY) }

// Indep is IndepSumRate.
func (m SumRate) Indep() float64 { return IndepSumRate(m.LamX, m.LamY, m.SNRX, m.SNRY) }

// LowerSumRate is the expected sum rate under comonotonic channels.
// SNRX*X + SNRY*Y is then exponential with rate
// lamX*lamY/(snrX*lamY + snrY*lamX).
func LowerSumRate(lamX, lamY, snrX, snrY float64) float64 {
	param := (lamX * lamY) / (snrX*lamY + snrY*lamX)

	return -ExpTimesExpi(param) / math.Ln2
}

// UpperSumRate integrates the sum rate over the countermonotonic
// coupling.
func UpperSumRate(lamX, lamY, snrX, snrY float64, cfg *Config) (Estimate, error) {
	return Upper(SumRate{LamX: lamX, LamY: lamY, SNRX: snrX, SNRY: snrY}, cfg)
}

// IndepSumRate is the expected sum rate for independent channels. When
// lamX/snrX == lamY/snrY the general formula is 0/0 and its limit is
// used instead; ratios a few ulps apart take the same route.
func IndepSumRate(lamX, lamY, snrX, snrY float64) float64 {
	a := lamX / snrX
	b := lamY / snrY

	switch {
	case a == b:
		incr("indep_sum_rate_equal_ratio")
	case nearlyEqual(a, b):
		incr("indep_sum_rate_near_ratio")
	}

	return -expiQuotient(a, b) / math.Ln2
}

// SumRateGrid builds one SumRate per element, broadcasting length-1
// columns.
func SumRateGrid(lamX, lamY, snrX, snrY []float64) ([]Metric, error) {
	n, err := broadcast(lamX, lamY, snrX, snrY)
	if err != nil {
		return nil, err
	}

	out := make([]Metric, n)
	for i := range out {
		m := SumRate{LamX: at(lamX, i), LamY: at(lamY, i), SNRX: at(snrX, i), SNRY: at(snrY, i)}
		if err := m.Validate(); err != nil {
			return nil, err
		}

		out[i] = m
	}

	return out, nil
}
