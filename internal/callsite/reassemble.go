// Package callsite -- поиск вызовов функции логирования в исходном тексте и проверка
// соответствия числа аргументов числу спецификаторов формата.
package callsite

import "strings"

// CallSite логический вызов, собранный из одной или нескольких физических строк.
type CallSite struct {
	Text      string // Склеенный текст вызова.
	StartLine int    // Строка, на которой найдена подстрока-триггер (нумерация с 1).
	EndLine   int    // Строка, на которой скобки сбалансировались.
}

// Reassembler накопитель строк вызова до баланса круглых скобок.
type Reassembler struct {
	trigger string
	buf     strings.Builder
	active  bool
	open    int
	closed  int
	start   int
	end     int
}

// NewReassembler создание накопителя для заданной подстроки-триггера.
func NewReassembler(trigger string) *Reassembler {
	return &Reassembler{trigger: trigger}
}

// Feed добавление очередной физической строки с номером lineNo.
// Возвращает собранный вызов и true, если после добавления строки скобки сбалансированы.
func (r *Reassembler) Feed(line string, lineNo int) (CallSite, bool) {
	if !r.active {
		if !strings.Contains(line, r.trigger) {
			return CallSite{}, false
		}
		r.active = true
		r.start = lineNo
	}
	r.buf.WriteString(line)
	r.open += strings.Count(line, "(")
	r.closed += strings.Count(line, ")")
	r.end = lineNo
	if r.open != r.closed {
		return CallSite{}, false
	}
	site := CallSite{Text: r.buf.String(), StartLine: r.start, EndLine: r.end}
	r.Reset()
	return site, true
}

// Pending возвращает незавершенный вызов, если накопление не закончено.
func (r *Reassembler) Pending() (CallSite, bool) {
	if !r.active {
		return CallSite{}, false
	}
	return CallSite{Text: r.buf.String(), StartLine: r.start, EndLine: r.end}, true
}

// Reset сброс накопителя.
func (r *Reassembler) Reset() {
	r.buf.Reset()
	r.active = false
	r.open, r.closed = 0, 0
	r.start, r.end = 0, 0
}

// Reassemble разбиение последовательности строк на логические вызовы.
// Вызов, скобки которого не сбалансировались до конца текста, отбрасывается.
func Reassemble(lines []string, trigger string) []CallSite {
	var sites []CallSite
	r := NewReassembler(trigger)
	for i, line := range lines {
		if site, ok := r.Feed(line, i+1); ok {
			sites = append(sites, site)
		}
	}
	return sites
}

// SplitLines разбиение текста файла на физические строки.
// Завершающий '\r' строки отбрасывается.
func SplitLines(data string) []string {
	lines := strings.Split(data, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
