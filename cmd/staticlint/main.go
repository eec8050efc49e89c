// Package staticlint -- multichecker, статический анализатор.
// Помимо проверки вызовов printf-подобных функций (logscan/internal/callsite)
// подключает анализаторы passes, staticcheck, stylecheck и сторонние линтеры.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"

	printffuncname "github.com/golangci/go-printf-func-name/pkg/analyzer"
	"github.com/kisielk/errcheck/errcheck"
	"github.com/ultraware/funlen"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"logscan/internal/callsite"
)

// Config — имя файла конфигурации.
const Config = `multichecker.json`

// ConfigData описывает структуру файла конфигурации.
type ConfigData struct {
	Staticcheck     []string
	StaticcheckExcl []string
	Stylecheck      []string
	StylecheckExcl  []string
	Analysis        []string
	AnalysisExcl    []string
}

// ChecksCreate формирование набора анализаторов по конфигурации.
func ChecksCreate(cfg ConfigData, typeRegistry analysisTypeRegistry) ([]*analysis.Analyzer, error) {
	mychecks := []*analysis.Analyzer{
		callsite.Analyzer,
		printffuncname.Analyzer,
		funlen.NewAnalyzer(220, 200, true),
	}

	checks := make(map[string]bool)
	for _, v := range cfg.Staticcheck {
		checks[v] = true
	}
	for _, v := range cfg.Stylecheck {
		checks[v] = true
	}
	for _, v := range cfg.Analysis {
		if v != "all" {
			checks[v] = true
		}
	}

	exclude := make(map[string]bool)
	for _, v := range cfg.StaticcheckExcl {
		exclude[v] = true
	}
	for _, v := range cfg.StylecheckExcl {
		exclude[v] = true
	}
	for _, v := range cfg.AnalysisExcl {
		exclude[v] = true
	}

	// Если в конфиг файле для "staticcheck" указано allSA -- используются все SA анализаторы.
	allSA := len(cfg.Staticcheck) > 0 && cfg.Staticcheck[0] == "allSA"
	for _, v := range staticcheck.Analyzers {
		if (allSA || checks[v.Analyzer.Name]) && !exclude[v.Analyzer.Name] {
			mychecks = append(mychecks, v.Analyzer)
		}
	}
	// Если в конфиг файле для "stylecheck" указано allST -- используются все ST анализаторы.
	allST := len(cfg.Stylecheck) > 0 && cfg.Stylecheck[0] == "allST"
	for _, v := range stylecheck.Analyzers {
		if (allST || checks[v.Analyzer.Name]) && !exclude[v.Analyzer.Name] {
			mychecks = append(mychecks, v.Analyzer)
		}
	}

	// Анализаторы golang.org/x/tools/go/analysis/passes берутся из typeRegistry.
	if len(cfg.Analysis) > 0 && cfg.Analysis[0] == "all" {
		for _, k := range typeRegistry.Names() {
			if !exclude[k] {
				mychecks = append(mychecks, typeRegistry[k])
			}
		}
	} else {
		for _, v := range cfg.Analysis {
			a, ok := typeRegistry[v]
			if !ok {
				log.Println("ChecksCreate: unknown analyzer", v)
				continue
			}
			if !exclude[v] {
				mychecks = append(mychecks, a)
			}
		}
	}

	if flags.ErrCheckEnable {
		mychecks = append(mychecks, errcheck.Analyzer)
	}

	return mychecks, nil
}

func readConfig(configFile string) (ConfigData, error) {
	var cfg ConfigData
	appfile, err := os.Executable()
	if err != nil {
		log.Println("main: error os.Executable() call")
		return cfg, err
	}
	// Вычитывание конфигурационного файла.
	data, err := os.ReadFile(filepath.Join(filepath.Dir(appfile), configFile))
	if err != nil {
		log.Println("main: error in os.ReadFile", err)
		return cfg, err
	}

	// Вычищаем из конфигурационного файла закомментированные с "//" строки.
	regex := regexp.MustCompile(`(?m)^\s*//.*$`)
	d := regex.ReplaceAllString(string(data), "")

	if err = json.Unmarshal([]byte(d), &cfg); err != nil {
		log.Println("main: json.Unmarshal() call")
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := initConfig(); err != nil {
		log.Fatal("initConfig() error", err)
	}

	// Инициализация registry с passes анализаторами.
	typeRegistry := createAnalysisTypesRegistry()

	// Инициализация конфигурации.
	cfg, err := readConfig(Config)
	if err != nil {
		log.Fatal("main: error in readConfig()", err)
	}

	// Инициализация набора проверок.
	mychecks, err := ChecksCreate(cfg, typeRegistry)
	if err != nil {
		log.Fatal("main: error in ChecksCreate()", err)
	}

	log.Println("Checks:", len(mychecks))
	multichecker.Main(
		mychecks...,
	)
}
