// Package report -- вывод результатов проверки и вычисление кода завершения.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"logscan/internal/callsite"
	"logscan/internal/scan"
)

// Форматы вывода.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Коды завершения.
const (
	// MaxStatus максимальный код завершения, соответствующий числу несоответствий.
	MaxStatus = 125
	// StatusError код завершения при ошибке конфигурации или обхода каталога.
	StatusError = 126
)

// Printer вывод диагностик в заданном формате.
type Printer struct {
	w       io.Writer
	trigger string
	format  string
	header  *color.Color
}

// NewPrinter создание Printer. useColor включает выделение заголовка диагностики цветом.
func NewPrinter(w io.Writer, trigger, format string, useColor bool) *Printer {
	header := color.New(color.FgRed, color.Bold)
	if useColor {
		header.EnableColor()
	} else {
		header.DisableColor()
	}
	return &Printer{w: w, trigger: trigger, format: format, header: header}
}

// Print вывод результата прохода.
func (p *Printer) Print(res *scan.Result) error {
	switch p.format {
	case FormatJSON:
		return p.JSON(res)
	case FormatText, "":
		return p.Text(res)
	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
}

// Text вывод в фиксированном текстовом формате.
func (p *Printer) Text(res *scan.Result) error {
	for _, d := range res.Diagnostics {
		if _, err := p.header.Fprintf(p.w, "Incorrect number of arguments for %s statement found.\n", p.trigger); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "%s:%d\nLine = %s\nnumRelevantCommas = %d, numRelevantPercents = %d\n\n",
			d.Path, d.Line, d.Text, d.Arguments, d.Placeholders); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(p.w, "# of incorrect instances: %d\n", res.Total())
	return err
}

type jsonError struct {
	Path  string `json:"path"`
	Line  int    `json:"line,omitempty"`
	Error string `json:"error"`
}

type jsonReport struct {
	Diagnostics []callsite.Diagnostic `json:"diagnostics"`
	Errors      []jsonError           `json:"errors"`
	Files       int                   `json:"files"`
	Total       int                   `json:"total"`
}

// JSON вывод результата одним JSON документом.
func (p *Printer) JSON(res *scan.Result) error {
	out := jsonReport{
		Diagnostics: res.Diagnostics,
		Errors:      make([]jsonError, 0, len(res.Errors)),
		Files:       res.Files,
		Total:       res.Total(),
	}
	if out.Diagnostics == nil {
		out.Diagnostics = []callsite.Diagnostic{}
	}
	for _, e := range res.Errors {
		je := jsonError{Error: e.Error()}
		var cse *callsite.CallSiteError
		var fe *scan.FileError
		switch {
		case errors.As(e, &cse):
			je.Path, je.Line, je.Error = cse.Path, cse.Line, cse.Err.Error()
		case errors.As(e, &fe):
			je.Path, je.Error = fe.Path, fe.Err.Error()
		}
		out.Errors = append(out.Errors, je)
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExitStatus код завершения по числу несоответствий.
// Значения больше MaxStatus ограничиваются, saturated == true.
func ExitStatus(total int) (status int, saturated bool) {
	if total > MaxStatus {
		return MaxStatus, true
	}
	return total, false
}
