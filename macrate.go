// -*- tab-width:2 -*-

package copula

import (
	"math"
)

// MACRate is the rate log2(1 + x/(1/SNR + y)) of a user decoded first
// on a multiple-access channel while the other user, with power y,
// is treated as noise.
type MACRate struct {
	LamX float64
	LamY float64
	SNR  float64
}

var _ Metric = MACRate{}

// Name is used in errors and logs.
func (m MACRate) Name() string { return "mac-rate" }

// Validate checks that all parameters are positive.
func (m MACRate) Validate() error {
	if err := positive("lam_x", m.LamX); err != nil {
		return err
	}

	if err := positive("lam_y", m.LamY); err != nil {
		return err
	}

	return positive("snr", m.SNR)
}

// Cost is the instantaneous rate in bits.
func (m MACRate) Cost(x, y float64) float64 {
	return math.Log1p(x/(1/m.SNR+y)) / math.Ln2
}

// Rates returns LamX, LamY.
func (m MACRate) Rates() (float64, float64) { return m.LamX, m.LamY }

// Lower is LowerMACRate.
func (m MACRate) Lower() float64 { return LowerMACRate(m.LamX, m.LamY, m.SNR) }

// Indep is IndepMACRate.
func (m MACRate) Indep() float64 { return IndepMACRate(m.LamX, m.LamY, m.SNR) }

// LowerMACRate is the expected rate under comonotonic channels.
func LowerMACRate(lamX, lamY, snr float64) float64 {
	s := 1 / snr
	part1 := ExpTimesExpi(lamY * s)
	part2 := ExpTimesExpi(lamX * lamY * s / (lamX + lamY))

	return (part1 - part2) / math.Ln2
}

// UpperMACRate integrates the rate over the countermonotonic coupling.
func UpperMACRate(lamX, lamY, snr float64, cfg *Config) (Estimate, error) {
	return Upper(MACRate{LamX: lamX, LamY: lamY, SNR: snr}, cfg)
}

// IndepMACRate is the expected rate for independent channels, the
// difference of E[ln(s+X+Y)] and E[ln(s+Y)] with s = 1/snr. Equal
// rates take the limit form of the first term, nearly equal rates its
// midpoint form.
func IndepMACRate(lamX, lamY, snr float64) float64 {
	s := 1 / snr
	logS := math.Log(s)

	switch {
	case lamX == lamY:
		incr("indep_mac_rate_equal_rate")
	case nearlyEqual(lamX, lamY):
		incr("indep_mac_rate_near_rate")
	}

	xi := logS - expiQuotient(lamX*s, lamY*s)
	psi := logS - ExpTimesExpi(lamY*s)

	return (xi - psi) / math.Ln2
}

// MACRateGrid builds one MACRate per element, broadcasting length-1
// columns.
func MACRateGrid(lamX, lamY, snr []float64) ([]Metric, error) {
	n, err := broadcast(lamX, lamY, snr)
	if err != nil {
		return nil, err
	}

	out := make([]Metric, n)
	for i := range out {
		m := MACRate{LamX: at(lamX, i), LamY: at(lamY, i), SNR: at(snr, i)}
		if err := m.Validate(); err != nil {
			return nil, err
		}

		out[i] = m
	}

	return out, nil
}
