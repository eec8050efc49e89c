// Package internal -- общие для команд logscan вспомогательные функции.
package internal

import (
	"fmt"

	"go.uber.org/zap"
)

// PrintStartMessage функция вывода значений buildVersion, buildDate, buildCommit при старте.
// Переменные buildVersion, buildDate, buildCommit объявлены в main.go.
// Значения задаются флагами линковщика, определенными через -X при сборке. Пример:
//
//	$ go build -ldflags "-X main.buildVersion=v0.3.0 -X 'main.buildDate=$(date +'%Y/%m/%d %H:%M:%S')' -X main.buildCommit=$(git rev-parse --short HEAD)" -o logscan ./cmd/logscan
func PrintStartMessage(sugar *zap.SugaredLogger, buildVersion, buildDate, buildCommit string) map[string]string {
	var printOptions = map[string]string{"version": buildVersion, "date": buildDate, "commit": buildCommit}
	// Ключи для сохранения порядка вывода опций - в отдельный слайс, по которому и будем итерироваться.
	var keys = []string{"version", "date", "commit"}
	for _, k := range keys {
		if printOptions[k] == "" {
			printOptions[k] = "N/A"
		}
		r := fmt.Sprintf("Build %s: %s", k, printOptions[k])
		printOptions[k] = r
		if sugar != nil {
			sugar.Info(r)
		}
	}
	return printOptions
}
