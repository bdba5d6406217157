package handler

import (
	"errors"
	"fmt"
	"io"

	"rate-converter/internal/entity"
	"rate-converter/internal/usecase"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type ConversionHandler struct {
	usecase usecase.ConversionUsecase
	out     io.Writer
	logger  *logrus.Logger
}

func NewConversionHandler(usecase usecase.ConversionUsecase, out io.Writer, logger *logrus.Logger) *ConversionHandler {
	return &ConversionHandler{
		usecase: usecase,
		out:     out,
		logger:  logger,
	}
}

// Run converts the positional arguments and writes the report. It returns the process exit code.
func (h *ConversionHandler) Run(program string, args []string) int {
	result, err := h.usecase.Convert(args)
	if err != nil {
		h.logger.WithError(err).Debugf("Conversion failed for args %q", args)
		for _, msg := range errorMessages(program, err) {
			fmt.Fprintln(h.out, msg)
		}
		return ExitFailure
	}

	fmt.Fprintf(h.out, "Uncertain conversion rate: %f\n", result.SampledRate)
	fmt.Fprintf(h.out, "Converted Amount: %f\n", result.ConvertedAmount)
	return ExitSuccess
}

func errorMessages(program string, err error) []string {
	switch {
	case errors.Is(err, entity.ErrUsage):
		return []string{fmt.Sprintf("Usage: %s <rateMin> <rateMax> <amount>", program)}
	case errors.Is(err, entity.ErrInvalidRange):
		return []string{"Error: rateMax must be greater than rateMin."}
	case errors.Is(err, entity.ErrInvalidAmount):
		return []string{"Error: amount must be positive and greater than zero."}
	}

	var msgs []string
	for _, e := range multierr.Errors(err) {
		var perr *entity.ParseError
		if errors.As(e, &perr) {
			e = perr
		}
		msgs = append(msgs, fmt.Sprintf("Error: %s.", e))
	}
	return msgs
}
