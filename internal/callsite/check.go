package callsite

import "go.uber.org/zap"

// Diagnostic описание найденного несоответствия.
type Diagnostic struct {
	Path         string `json:"path"`
	Line         int    `json:"line"`     // Строка начала вызова.
	EndLine      int    `json:"end_line"` // Строка окончания вызова.
	Text         string `json:"text"`
	Format       string `json:"format,omitempty"`
	Arguments    int    `json:"num_relevant_commas"`
	Placeholders int    `json:"num_relevant_percents"`
}

// FileResult результат проверки одного файла.
type FileResult struct {
	Path        string
	Diagnostics []Diagnostic
	Errors      []error // *CallSiteError для вызовов с нарушенной структурой скобок.
	Sites       int     // Число собранных вызовов.
}

// Checker проверка вызовов функции логирования.
// Не хранит состояния между файлами и может использоваться из нескольких горутин.
type Checker struct {
	trigger string
	sugar   *zap.SugaredLogger
}

// NewChecker создание Checker для подстроки-триггера trigger.
func NewChecker(trigger string, sugar *zap.SugaredLogger) *Checker {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return &Checker{trigger: trigger, sugar: sugar}
}

// Trigger подстрока, по которой распознается вызов.
func (c *Checker) Trigger() string {
	return c.trigger
}

// CheckLines проверка файла path, заданного последовательностью физических строк.
func (c *Checker) CheckLines(path string, lines []string) FileResult {
	res := FileResult{Path: path}
	r := NewReassembler(c.trigger)
	for i, line := range lines {
		site, ok := r.Feed(line, i+1)
		if !ok {
			continue
		}
		res.Sites++
		d, err := c.CheckSite(path, site)
		if err != nil {
			c.sugar.Warnw("call site skipped", "path", path, "line", site.StartLine, "error", err)
			res.Errors = append(res.Errors, err)
			continue
		}
		if d != nil {
			res.Diagnostics = append(res.Diagnostics, *d)
		}
	}
	if site, ok := r.Pending(); ok {
		c.sugar.Debugw("unterminated call site dropped", "path", path, "line", site.StartLine)
	}
	return res
}

// CheckSite проверка одного собранного вызова.
// Возвращает nil, если несоответствия нет или в вызове нет строки формата.
func (c *Checker) CheckSite(path string, site CallSite) (*Diagnostic, error) {
	counts, ok, err := Count(site.Text)
	if err != nil {
		return nil, &CallSiteError{Path: path, Line: site.StartLine, Text: site.Text, Err: err}
	}
	if !ok || !counts.Mismatch() {
		return nil, nil
	}
	return &Diagnostic{
		Path:         path,
		Line:         site.StartLine,
		EndLine:      site.EndLine,
		Text:         site.Text,
		Format:       counts.Format,
		Arguments:    counts.Arguments,
		Placeholders: counts.Placeholders,
	}, nil
}
