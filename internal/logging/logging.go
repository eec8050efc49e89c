// Package logging -- пакет конфигурирования логирования.
package logging

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger создание zap логгера.
// Без logfile -- консольный вывод в stderr, иначе JSON в файл logfile.
// runID добавляется ко всем записям в поле "run".
func NewLogger(logfile string, verbose bool, runID string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if logfile == "" {
		cfg = zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
	} else {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{logfile}
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar().With("run", runID), nil
}

// WithLogging обертка над шагом работы для логирования его длительности и ошибки.
func WithLogging(sugar *zap.SugaredLogger, step string, fn func() error) error {
	start := time.Now()
	err := fn()
	duration := time.Since(start)

	if err != nil {
		sugar.Errorw("step failed", "step", step, "duration", duration, "error", err)
		return err
	}
	sugar.Infow("step done", "step", step, "duration", duration)
	return nil
}
