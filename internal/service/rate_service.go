package service

import (
	"math"

	"rate-converter/internal/adapter/random"
	"rate-converter/internal/entity"

	"github.com/sirupsen/logrus"
)

// largest float64 below 1
var maxUniform = math.Nextafter(1, 0)

type RateService struct {
	source random.Source
	logger *logrus.Logger
}

func NewRateService(source random.Source, logger *logrus.Logger) *RateService {
	return &RateService{
		source: source,
		logger: logger,
	}
}

// Convert expects a validated request.
func (r *RateService) Convert(req entity.ConversionRequest) entity.ConversionResult {
	rate := SampleRate(req.RateMin, req.RateMax, r.source)
	converted := req.Amount * rate

	r.logger.WithFields(logrus.Fields{
		"rate_min":         req.RateMin,
		"rate_max":         req.RateMax,
		"amount":           req.Amount,
		"sampled_rate":     rate,
		"converted_amount": converted,
	}).Info("Converted amount at sampled rate")

	return entity.ConversionResult{
		SampledRate:     rate,
		ConvertedAmount: converted,
	}
}

// SampleRate draws once from src and scales the draw into [rateMin, rateMax).
// Draws outside [0,1) are clamped, and a result that rounds up to rateMax is
// pulled back to the next representable value below it.
func SampleRate(rateMin, rateMax float64, src random.Source) float64 {
	u := src.Float64()
	switch {
	case !(u >= 0):
		u = 0
	case u >= 1:
		u = maxUniform
	}

	var rate float64
	if span := rateMax - rateMin; math.IsInf(span, 0) {
		rate = rateMin*(1-u) + rateMax*u
	} else {
		rate = rateMin + u*span
	}

	if rate >= rateMax {
		rate = math.Nextafter(rateMax, rateMin)
	}
	if rate < rateMin {
		rate = rateMin
	}
	return rate
}
