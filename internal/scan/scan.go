// Package scan -- проход по исходным файлам и агрегирование результатов проверки вызовов.
package scan

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"logscan/internal/callsite"
	"logscan/internal/collector"
)

// Options параметры прохода.
type Options struct {
	Collector collector.Options
	Trigger   string
	Jobs      int // Число параллельно обрабатываемых файлов, 0 -- GOMAXPROCS.
}

// FileError ошибка чтения файла. Файл пропускается, проход продолжается.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Result агрегированный результат прохода.
// Диагностики упорядочены по списку файлов, внутри файла -- по номеру строки.
type Result struct {
	Files       int
	Sites       int
	Diagnostics []callsite.Diagnostic
	Errors      []error // *FileError и *callsite.CallSiteError.
}

// Total число найденных несоответствий.
func (r *Result) Total() int {
	return len(r.Diagnostics)
}

// Add добавление результата проверки одного файла.
func (r *Result) Add(fr callsite.FileResult) {
	r.Files++
	r.Sites += fr.Sites
	r.Diagnostics = append(r.Diagnostics, fr.Diagnostics...)
	r.Errors = append(r.Errors, fr.Errors...)
}

// Run сбор списка файлов и их проверка.
func Run(ctx context.Context, opts Options, sugar *zap.SugaredLogger) (*Result, error) {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	files, err := collector.Collect(opts.Collector)
	if err != nil {
		return nil, err
	}
	sugar.Infow("files collected", "root", opts.Collector.Root, "files", len(files))
	return Files(ctx, files, opts, sugar)
}

// Files проверка заданного списка файлов.
func Files(ctx context.Context, files []string, opts Options, sugar *zap.SugaredLogger) (*Result, error) {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	checker := callsite.NewChecker(opts.Trigger, sugar)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]callsite.FileResult, len(files))
	readErrs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			lines, err := collector.ReadLines(path)
			if err != nil {
				sugar.Warnw("file skipped", "path", path, "error", err)
				readErrs[i] = &FileError{Path: path, Err: err}
				return nil
			}
			results[i] = checker.CheckLines(path, lines)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	for i := range files {
		if readErrs[i] != nil {
			res.Errors = append(res.Errors, readErrs[i])
			continue
		}
		res.Add(results[i])
	}
	return res, nil
}
