package entity

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUsage         = errors.New("wrong number of arguments")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidRange  = errors.New("rateMax must be greater than rateMin")
	ErrInvalidAmount = errors.New("amount must be positive and greater than zero")
)

type ConversionRequest struct {
	RateMin float64 `json:"rate_min"`
	RateMax float64 `json:"rate_max"`
	Amount  float64 `json:"amount"`
}

type ConversionResult struct {
	SampledRate     float64 `json:"sampled_rate"`
	ConvertedAmount float64 `json:"converted_amount"`
}

// ParseError reports an argument that is not a finite number.
type ParseError struct {
	Field string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s must be a number, got %q", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidNumber
}

// Validate checks the range before the amount.
func (r ConversionRequest) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"rateMin", r.RateMin},
		{"rateMax", r.RateMax},
		{"amount", r.Amount},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ParseError{Field: f.name, Input: fmt.Sprint(f.value)}
		}
	}

	if r.RateMax <= r.RateMin {
		return ErrInvalidRange
	}

	if r.Amount <= 0 {
		return ErrInvalidAmount
	}

	return nil
}
