package random

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

type Generator struct {
	rnd    *rand.Rand
	logger *logrus.Logger
}

// NewGenerator seeds a PCG generator from the given instant. Call it once per process.
func NewGenerator(seed time.Time, logger *logrus.Logger) *Generator {
	ns := uint64(seed.UnixNano())
	logger.Debugf("Seeding random generator with %d", ns)

	return &Generator{
		rnd:    rand.New(rand.NewPCG(ns, ns^0x9e3779b97f4a7c15)),
		logger: logger,
	}
}

func (g *Generator) Float64() float64 {
	u := g.rnd.Float64()
	g.logger.Debugf("Drew uniform value %f", u)
	return u
}

// Fixed always returns the same draw. Useful for reproducible conversions.
type Fixed float64

func (f Fixed) Float64() float64 {
	return float64(f)
}
