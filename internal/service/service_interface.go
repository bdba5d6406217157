package service

import "rate-converter/internal/entity"

type ConversionService interface {
	Convert(req entity.ConversionRequest) entity.ConversionResult
}
