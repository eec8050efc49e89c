// Package config -- пакет, содержащий конфигурацию logscan.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"logscan/internal/collector"
	"logscan/internal/report"
)

// Config конфигурация logscan.
type Config struct {
	Root          string   `json:"root" mapstructure:"root"`             // Корневой каталог проверки.
	Extensions    []string `json:"extensions" mapstructure:"extensions"` // Расширения проверяемых файлов.
	Exclude       []string `json:"exclude" mapstructure:"exclude"`       // Пропускаемые каталоги.
	Trigger       string   `json:"trigger" mapstructure:"trigger"`       // Подстрока, обозначающая вызов функции логирования.
	Format        string   `json:"format" mapstructure:"format"`         // Формат вывода: text или json.
	Jobs          int      `json:"jobs" mapstructure:"jobs"`             // Число параллельно проверяемых файлов, 0 -- GOMAXPROCS.
	Logfile       string   `json:"logfile" mapstructure:"logfile"`       // Файл лога, пусто -- stderr.
	Verbose       bool     `json:"verbose" mapstructure:"verbose"`       // Debug уровень логирования.
	Color         bool     `json:"color" mapstructure:"color"`           // Выделение заголовков диагностик цветом.
	ConfigFile    string   `json:"-" mapstructure:"-"`                   // JSON файл конфигурации.
	UseYAMLConfig bool     `json:"-" mapstructure:"-"`                   // Читать logscan.yaml из . или ./conf.
	ShowVersion   bool     `json:"-" mapstructure:"-"`                   // Вывести версию и выйти.
}

// Default конфигурация по умолчанию.
func Default() Config {
	return Config{
		Root:       ".",
		Extensions: []string{".cpp", ".h"},
		Exclude:    append([]string(nil), collector.DefaultExclude...),
		Trigger:    "LogPrint",
		Format:     report.FormatText,
		Jobs:       1,
	}
}

// Validate проверка корректности конфигурации.
func (c *Config) Validate() error {
	var errs []error
	if c.Root == "" {
		errs = append(errs, errors.New("root directory is empty"))
	}
	if c.Trigger == "" {
		errs = append(errs, errors.New("trigger is empty"))
	}
	if len(c.Extensions) == 0 {
		errs = append(errs, errors.New("no file extensions"))
	}
	for _, e := range c.Extensions {
		if collector.NormalizeExt(e) == "" {
			errs = append(errs, errors.New("empty file extension"))
			break
		}
	}
	if c.Format != report.FormatText && c.Format != report.FormatJSON {
		errs = append(errs, fmt.Errorf("invalid format %q", c.Format))
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("invalid jobs %d", c.Jobs))
	}
	return errors.Join(errs...)
}

// ToJSON конвертация JSON с go-style комментариями в "чистый" JSON для json.Unmarshal.
// Внимание! Комментарии в конце строки должны быть оформлены в виде " // ".
func ToJSON(b []byte) []byte {
	var res [][]byte
	for _, s := range bytes.Split(b, []byte("\n")) {
		// Комментарии с начала строки.
		if bytes.HasPrefix(bytes.TrimLeft(s, " \t"), []byte("//")) {
			continue
		}
		res = append(res, bytes.Split(s, []byte(" // "))[0])
	}
	return bytes.Join(res, []byte("\n"))
}

// ReadConfig чтение конфигурации из json файла поверх уже заданных значений conf.
func ReadConfig(fileName string, conf *Config) error {
	log.Println("ReadConfig: start to read config file", fileName)
	data, err := os.ReadFile(fileName)
	if err != nil {
		log.Println("ReadConfig. Error in os.ReadFile() :", err)
		return err
	}
	if err = json.Unmarshal(ToJSON(data), conf); err != nil {
		log.Println("ReadConfig. Error in json.Unmarshal :", err)
		return fmt.Errorf("parse config %s: %w", fileName, err)
	}
	return nil
}
