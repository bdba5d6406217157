package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"rate-converter/internal/entity"
	"rate-converter/internal/service"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// positional argument names, in order
var argNames = [...]string{"rateMin", "rateMax", "amount"}

type RateUsecase struct {
	service service.ConversionService
	logger  *logrus.Logger
}

func NewRateUsecase(service service.ConversionService, logger *logrus.Logger) *RateUsecase {
	return &RateUsecase{
		service: service,
		logger:  logger,
	}
}

// ParseRequest reads rateMin, rateMax and amount. Every malformed argument is
// reported, combined into one error.
func (uc *RateUsecase) ParseRequest(args []string) (entity.ConversionRequest, error) {
	if len(args) != len(argNames) {
		uc.logger.Debugf("Expected %d arguments, got %d", len(argNames), len(args))
		return entity.ConversionRequest{}, fmt.Errorf("%w: expected %d, got %d", entity.ErrUsage, len(argNames), len(args))
	}

	var values [len(argNames)]float64
	var errs error
	for i, arg := range args {
		v, err := parseNumber(argNames[i], arg)
		if err != nil {
			uc.logger.WithError(err).Debugf("Failed to parse %s", argNames[i])
			errs = multierr.Append(errs, err)
			continue
		}
		values[i] = v
	}
	if errs != nil {
		uc.logger.Debugf("Failed to parse %d argument(s)", len(multierr.Errors(errs)))
		return entity.ConversionRequest{}, errs
	}

	return entity.ConversionRequest{
		RateMin: values[0],
		RateMax: values[1],
		Amount:  values[2],
	}, nil
}

func (uc *RateUsecase) Convert(args []string) (*entity.ConversionResult, error) {
	req, err := uc.ParseRequest(args)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		uc.logger.WithError(err).Debug("Rejected conversion request")
		return nil, fmt.Errorf("validate request: %w", err)
	}

	result := uc.service.Convert(req)

	uc.logger.Infof("Successfully converted %f at rate %f", req.Amount, result.SampledRate)
	return &result, nil
}

func parseNumber(field, input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &entity.ParseError{Field: field, Input: input}
	}
	return v, nil
}
