package usecase

import "rate-converter/internal/entity"

type ConversionUsecase interface {
	Convert(args []string) (*entity.ConversionResult, error)
}
