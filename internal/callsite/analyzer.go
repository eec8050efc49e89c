package callsite

import (
	"os"

	"golang.org/x/tools/go/analysis"
)

// DefaultGoTrigger подстрока-триггер анализатора для Go кода.
const DefaultGoTrigger = "Printf"

var trigger = DefaultGoTrigger

// Analyzer -- анализатор для multichecker, проверяющий число аргументов в вызовах
// printf-подобных функций построчно, без разбора AST.
var Analyzer = &analysis.Analyzer{
	Name: "logprintf",
	Doc:  "check that the number of arguments matches the number of % placeholders in printf-like calls",
	Run:  runCallSiteCheck,
}

func init() {
	Analyzer.Flags.StringVar(&trigger, "trigger", DefaultGoTrigger, "substring identifying a call to check")
}

// runCallSiteCheck -- run функция анализатора: читает исходники пакета и сообщает о несоответствиях.
func runCallSiteCheck(pass *analysis.Pass) (interface{}, error) {
	checker := NewChecker(trigger, nil)
	for _, file := range pass.Files {
		tf := pass.Fset.File(file.Pos())
		if tf == nil {
			continue
		}
		data, err := os.ReadFile(tf.Name())
		if err != nil {
			return nil, err
		}
		res := checker.CheckLines(tf.Name(), SplitLines(string(data)))
		for _, d := range res.Diagnostics {
			pass.Reportf(tf.LineStart(d.Line), "%s: %d placeholders vs %d arguments", trigger, d.Placeholders, d.Arguments)
		}
		for _, e := range res.Errors {
			if cse, ok := e.(*CallSiteError); ok {
				pass.Reportf(tf.LineStart(cse.Line), "%s: %v", trigger, cse.Err)
			}
		}
	}
	return nil, nil
}
