// -*- tab-width:2 -*-

// Package main runs the sample experiments: expectation bounds on the
// MAC rate over an SNR sweep, the outage comparison against the
// correlation model and the joint density of the lower sum bound for
// uniform marginals. Each writes a tab-separated .dat file.
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	copula "github.com/jayalane/go-copula"
	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Experiment parameters - easy to tweak.
const (
	// MAC rate sweep.
	lamX      = 1.0
	lamY      = 1.0
	snrMinDB  = -5
	snrMaxDB  = 20
	dbPerTen  = 10.0
	sweepStep = 1

	// Outage comparison.
	outageSNRDB   = 10.0
	outageRate    = 1.0
	numChannels   = 2
	numRho        = 20
	numMCSamples  = 50000
	monteCarloSrc = 1

	// Joint pdf of the lower sum bound.
	uniXMin = 1.0
	uniXMax = 3.0
	uniYMin = 2.0
	uniYMax = 5.0
	uniSum  = 6.0
)

func main() {
	ll.SetWriter(os.Stderr)

	cfg := copula.DefaultConfig()

	if len(os.Args) > 1 {
		var err error

		cfg, err = copula.LoadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
	}

	// sets up the logger and the counters
	cfg.ApplyLogging()
	count.SetResolution(count.HighRes)

	steps := []struct {
		name string
		run  func(*copula.Config) error
	}{
		{"mac rate bounds", macRateSweep},
		{"outage comparison", outageComparison},
		{"joint pdf", jointPDF},
	}

	for _, s := range steps {
		fmt.Println("===", s.name, "===")

		if err := s.run(cfg); err != nil {
			fmt.Fprintln(os.Stderr, s.name+":", err)
			os.Exit(1)
		}
	}

	count.LogCounters()
}

func macRateSweep(cfg *copula.Config) error {
	var snrDB, snr []float64
	for db := snrMinDB; db <= snrMaxDB; db += sweepStep {
		snrDB = append(snrDB, float64(db))
		snr = append(snr, math.Pow(10, float64(db)/dbPerTen))
	}

	ms, err := copula.MACRateGrid([]float64{lamX}, []float64{lamY}, snr)
	if err != nil {
		return err
	}

	bounds, err := copula.EvaluateEach(ms, cfg)
	if err != nil {
		return err
	}

	lower := make([]float64, len(bounds))
	upper := make([]float64, len(bounds))
	indep := make([]float64, len(bounds))

	for i, b := range bounds {
		lower[i], upper[i], indep[i] = b.Lower, b.Upper, b.Indep
	}

	res := copula.NewResults()
	res.Add("min", lower)
	res.Add("max", upper)
	res.Add("ind", indep)
	res.Add("snr", snrDB)

	return writeTSV(res, fmt.Sprintf("expectation-mac-rate-lx%g-ly%g.dat", lamX, lamY))
}

func outageComparison(cfg *copula.Config) error {
	snr := math.Pow(10, outageSNRDB/dbPerTen)
	s := copula.OutageThreshold(outageRate, snr)

	fmt.Printf("Upper Bound: %g\nLower Bound: %g\n",
		copula.OutageUpperBound(s, 1, 1), copula.OutageLowerBound(s, 1, 1))

	t, err := copula.SampleCommonTerm(numMCSamples, rand.NewSource(monteCarloSrc))
	if err != nil {
		return err
	}

	rho := floats.Span(make([]float64, numRho), 0, 1)
	rho[numRho-1] = 1

	res, err := copula.OutageSweep(s, rho, numChannels, t, cfg)
	if err != nil {
		return err
	}

	return writeTSV(res, fmt.Sprintf("rayleigh-comparison-corr-snr%g-rate%g.dat", outageSNRDB, outageRate))
}

func jointPDF(_ *copula.Config) error {
	pair := copula.UniformPair{
		X: copula.Support{Min: uniXMin, Max: uniXMax},
		Y: copula.Support{Min: uniYMin, Max: uniYMax},
	}

	pdf, err := copula.JointPDFLowerSumUniform(pair, uniSum, copula.DefaultGridSpec())
	if err != nil {
		return err
	}

	return writeTSV(pdf.Results(),
		fmt.Sprintf("joint_pdf-sum_uniform_lower-X%g_%g-Y%g_%g.dat", uniXMin, uniXMax, uniYMin, uniYMax))
}

// writeTSV writes one column per result name with a header row.
func writeTSV(res *copula.Results, filename string) (err error) {
	f, err := os.Create(filename) //nolint:gosec
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	names := res.Columns()
	if err := w.Write(names); err != nil {
		return err
	}

	for i := 0; i < res.Rows(); i++ {
		row := make([]string, len(names))

		for j, name := range names {
			col, _ := res.Get(name)
			if i < len(col) {
				row[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
			}
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return err
	}

	fmt.Println("wrote", filename)

	return nil
}
