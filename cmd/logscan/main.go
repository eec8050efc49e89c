// Команда logscan проверяет, что число аргументов в вызовах функции логирования
// совпадает с числом спецификаторов '%' в строке формата.
// Код завершения равен числу найденных несоответствий (не более 125).
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"logscan/config"
	"logscan/internal"
	"logscan/internal/collector"
	"logscan/internal/logging"
	"logscan/internal/report"
	"logscan/internal/scan"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(status)
}

// run запуск проверки, возвращает код завершения.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	conf := config.Default()
	if err := InitConfig(&conf, args, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Println("main: error in InitConfig():", err)
		return report.StatusError
	}

	sugar, err := logging.NewLogger(conf.Logfile, conf.Verbose, uuid.NewString())
	if err != nil {
		log.Println("main: error in logging.NewLogger():", err)
		return report.StatusError
	}
	defer sugar.Sync()

	startMsg := internal.PrintStartMessage(sugar, buildVersion, buildDate, buildCommit)
	if conf.ShowVersion {
		for _, k := range []string{"version", "date", "commit"} {
			_, _ = io.WriteString(stdout, startMsg[k]+"\n")
		}
		return 0
	}
	sugar.Debugw("config", "conf", conf)

	opts := scan.Options{
		Collector: collector.Options{Root: conf.Root, Extensions: conf.Extensions, Exclude: conf.Exclude},
		Trigger:   conf.Trigger,
		Jobs:      conf.Jobs,
	}
	var res *scan.Result
	err = logging.WithLogging(sugar, "scan", func() error {
		var err error
		res, err = scan.Run(ctx, opts, sugar)
		return err
	})
	if err != nil {
		return report.StatusError
	}

	printer := report.NewPrinter(stdout, conf.Trigger, conf.Format, conf.Color)
	if err := printer.Print(res); err != nil {
		sugar.Errorw("print report", "error", err)
		return report.StatusError
	}

	status, saturated := report.ExitStatus(res.Total())
	if saturated {
		sugar.Warnw("exit status saturated", "total", res.Total(), "status", status)
	}
	sugar.Infow("scan finished", "files", res.Files, "sites", res.Sites, "mismatches", res.Total(), "errors", len(res.Errors))
	return status
}
