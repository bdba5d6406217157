package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"rate-converter/internal/adapter/random"
	"rate-converter/internal/handler"
	"rate-converter/internal/service"
	"rate-converter/internal/usecase"
	"rate-converter/pkg/config"
	"rate-converter/pkg/logger"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, time.Now()))
}

func run(argv []string, stdout io.Writer, seed time.Time) int {
	cfg, cfgErr := config.LoadConfig()
	if cfgErr != nil {
		cfg = config.Default()
	}

	log := logger.Init(cfg.Log.Level)

	if cfgErr != nil {
		log.WithError(cfgErr).Warn("Failed to load config, using defaults")
	}

	log.Debugf("Starting %s...", cfg.App.Name)

	// seeded once per run
	source := random.NewGenerator(seed, log)

	rateService := service.NewRateService(source, log)
	log.Debug("Initialized service layer")

	rateUsecase := usecase.NewRateUsecase(rateService, log)
	log.Debug("Initialized usecase layer")

	conversionHandler := handler.NewConversionHandler(rateUsecase, stdout, log)

	return conversionHandler.Run(filepath.Base(argv[0]), argv[1:])
}
