package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"logscan/internal/callsite"
)

type Flags struct {
	ErrCheckEnable bool
	Trigger        string
}

var flags = Flags{}

// initConfig функция инициализации конфигурации multichecker-а из переменных окружения.
func initConfig() error {

	// Default values.
	flags.ErrCheckEnable = false
	flags.Trigger = callsite.DefaultGoTrigger

	// Пытаемся прочитать переменную окружения ERRCHECK_ENABLE.
	if envErrCheckEnable := os.Getenv("ERRCHECK_ENABLE"); envErrCheckEnable != "" {
		log.Println("env var ERRCHECK_ENABLE was specified, check ERRCHECK_ENABLE =", envErrCheckEnable)
		tmp, err := strconv.ParseBool(envErrCheckEnable)
		if err != nil {
			log.Printf("invalid ERRCHECK_ENABLE variable `%s`", envErrCheckEnable)
			tmp = flags.ErrCheckEnable
		}
		flags.ErrCheckEnable = tmp
		log.Println("Using env var ERRCHECK_ENABLE =", flags.ErrCheckEnable)
	}

	// LOGSCAN_TRIGGER задает подстроку-триггер анализатора logprintf.
	// Флаг -logprintf.trigger командной строки имеет приоритет.
	if envTrigger := os.Getenv("LOGSCAN_TRIGGER"); envTrigger != "" {
		log.Println("Using env var LOGSCAN_TRIGGER =", envTrigger)
		flags.Trigger = envTrigger
	}
	if err := callsite.Analyzer.Flags.Set("trigger", flags.Trigger); err != nil {
		return fmt.Errorf("set logprintf trigger: %w", err)
	}

	return nil
}
