// -*- tab-width:2 -*-

package copula

// SINR is x/(S + y): signal power x against interference y and
// normalized noise S.
type SINR struct {
	S    float64
	LamX float64
	LamY float64
}

var _ Metric = SINR{}

// Name is used in errors and logs.
func (m SINR) Name() string { return "sinr" }

// Validate checks that all parameters are positive.
func (m SINR) Validate() error {
	if err := positive("s", m.S); err != nil {
		return err
	}

	if err := positive("lam_x", m.LamX); err != nil {
		return err
	}

	return positive("lam_y", m.LamY)
}

// Cost is the instantaneous SINR.
func (m SINR) Cost(x, y float64) float64 {
	return x / (m.S + y)
}

// Rates returns LamX, LamY.
func (m SINR) Rates() (float64, float64) { return m.LamX, m.LamY }

// Lower is LowerSINR.
func (m SINR) Lower() float64 { return LowerSINR(m.S, m.LamX, m.LamY) }

// Indep is IndepSINR.
func (m SINR) Indep() float64 { return IndepSINR(m.S, m.LamX, m.LamY) }

// LowerSINR is the expected SINR under comonotonic channels.
func LowerSINR(s, lamX, lamY float64) float64 {
	return (lamY + lamY*lamY*s*ExpTimesExpi(lamY*s)) / lamX
}

// UpperSINR integrates the SINR over the countermonotonic coupling.
func UpperSINR(s, lamX, lamY float64, cfg *Config) (Estimate, error) {
	return Upper(SINR{S: s, LamX: lamX, LamY: lamY}, cfg)
}

// IndepSINR is E[X]*E[1/(s+Y)] for independent channels; for real
// x > 0, Gamma(0, x) = -Ei(-x).
func IndepSINR(s, lamX, lamY float64) float64 {
	expectX := 1 / lamX
	expectZ := -lamY * ExpTimesExpi(lamY*s)

	return expectX * expectZ
}

// SINRGrid builds one SINR per element, broadcasting length-1 columns.
func SINRGrid(s, lamX, lamY []float64) ([]Metric, error) {
	n, err := broadcast(s, lamX, lamY)
	if err != nil {
		return nil, err
	}

	out := make([]Metric, n)
	for i := range out {
		m := SINR{S: at(s, i), LamX: at(lamX, i), LamY: at(lamY, i)}
		if err := m.Validate(); err != nil {
			return nil, err
		}

		out[i] = m
	}

	return out, nil
}
