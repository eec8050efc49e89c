// Package description -- подробное описание multichecker смотрите в файле doc.go.
package description

/*
Статический анализатор staticlint -- multichecker на базе golang.org/x/tools/go/analysis.
Основная проверка -- logprintf: число аргументов в вызовах printf-подобных функций
должно совпадать с числом спецификаторов '%' в строке формата. Это та же проверка,
что выполняет команда logscan для C/C++ исходников, но запускаемая по пакетам Go.

В multichecker включены анализаторы:

logprintf (logscan/internal/callsite)
Построчная проверка вызовов. Вызов распознается по подстроке-триггеру (по умолчанию "Printf"),
может занимать несколько строк, диагностика выставляется на строку начала вызова.
Подстрока-триггер задается флагом -logprintf.trigger или переменной окружения LOGSCAN_TRIGGER.

Стандартные анализаторы пакета golang.org/x/tools/go/analysis/passes
https://pkg.go.dev/golang.org/x/tools/go/analysis
Доступные по имени: assign, bools, composite, copylock, errorsas, loopclosure, lostcancel, nilfunc,
printf, shadow, shift, slog, stdmethods, stringintconv, structtag, tests, unmarshal, unreachable,
unusedresult.

Staticcheck и stylecheck
https://pkg.go.dev/honnef.co/go/tools/cmd/staticcheck

Funlen linter
https://github.com/ultraware/funlen
Значения по умолчанию 220 строк и 200 выражений.

go-printf-func-name
https://github.com/golangci/go-printf-func-name
Проверяет, что имена printf-подобных функций заканчиваются на f.

errcheck
https://github.com/kisielk/errcheck/
По умолчанию выключен, включается переменной окружения ERRCHECK_ENABLE:
$ export ERRCHECK_ENABLE=true

########################

Конфигурирование multichecker-а

Файл multichecker.json должен находиться в одной директории с исполняемым файлом.

Example:

$ cat multichecker.json

{
  "staticcheck": [
    "allSA"
  ],
  "staticcheckexcl": [
    "SA1000"
  ],
  "stylecheck": [
    "ST1005"
  ],
  // "all" -- все анализаторы passes из реестра
  "analysis": [
    "printf",
    "stringintconv",
    "unusedresult"
  ],
  "analysisexcl": [
    "shadow"
  ]
}

"staticcheck" -- подключаемые SA анализаторы, allSA -- все.
"stylecheck" -- подключаемые ST анализаторы, allST -- все.
"analysis" -- подключаемые passes анализаторы, all -- все из реестра.
Разделы *excl -- исключаемые анализаторы.
Строки, начинающиеся с //, при разборе игнорируются.

####################

Запуск:

$ ./staticlint ./...
$ LOGSCAN_TRIGGER=Logf ./staticlint ./internal/...
$ ./staticlint -logprintf.trigger=Errorf ./...

*/
