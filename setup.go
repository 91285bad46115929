// -*- tab-width:2 -*-

// Package copula provides copula models and the bound engines built on
// them: expectation bounds on rate and SINR costs of two dependent fading
// channels, joint-distribution bounds for uniform marginals and outage
// bounds compared against a correlation model from the literature.
package copula

import (
	"sync"

	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
)

var (
	ml        *ll.Lll
	mlOnce    sync.Once
	countOnce sync.Once
)

const defaultLogLevel = "none"

// Init sets up the package logger and the go-counter tables. It is
// called lazily by the library, call it (or InitWithLogger) first to
// control the log level. Programs that call count.InitCounters
// themselves should do so before the first library call.
func Init() {
	initCounters()
	mlOnce.Do(func() {
		ml = ll.Init("COPULA", defaultLogLevel)
	})
}

// InitWithLogger is an init where you can
// pass in the go-lll logger.
func InitWithLogger(l *ll.Lll) {
	initCounters()
	mlOnce.Do(func() {
		ml = l
	})
}

func initCounters() {
	countOnce.Do(count.InitCounters)
}

func logger() *ll.Lll {
	Init()

	return ml
}

// incr and friends make sure the counters exist before go-counter
// indexes them.
func incr(name string) {
	Init()
	count.Incr(name)
}

func incrSuffix(name, suffix string) {
	Init()
	count.IncrSuffix(name, suffix)
}

func markDistribution(name string, v float64) {
	Init()
	count.MarkDistribution(name, v)
}
