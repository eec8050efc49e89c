package callsite

import "strings"

// Counts результат подсчета для одного вызова.
type Counts struct {
	Placeholders int    // Число '%' в строке формата (без '%' в аргументах).
	Arguments    int    // Число аргументов верхнего уровня после строки формата.
	Format       string // Литерал строки формата вместе с кавычками.
}

// Mismatch true, если число аргументов не совпадает с числом спецификаторов.
func (c Counts) Mismatch() bool {
	return c.Placeholders != c.Arguments
}

// Count подсчет спецификаторов формата и аргументов в тексте вызова.
// ok == false, если в тексте нет '%' или за первым '%' нет закрывающей кавычки.
func Count(text string) (counts Counts, ok bool, err error) {
	first := strings.IndexByte(text, '%')
	if first < 0 {
		return Counts{}, false, nil
	}
	start := quoteBefore(text, first)
	end := quoteFrom(text, first)
	if end < 0 {
		return Counts{}, false, nil
	}
	if start >= 0 {
		counts.Format = text[start : end+1]
	}

	// Запятая после строки формата отделяет первый аргумент.
	comma := strings.IndexByte(text[end:], ',')
	extra := 0
	if comma >= 0 {
		comma += end
		// Последний символ вызова (закрывающая скобка) отбрасывается,
		// вместо него список аргументов оборачивается в собственную скобку.
		line := "(" + text[comma:len(text)-1]
		counts.Arguments, err = CountRelevantCommas(line)
		if err != nil {
			return counts, true, err
		}
		extra = strings.Count(text[comma:], "%")
	}
	counts.Placeholders = strings.Count(text, "%") - extra
	return counts, true, nil
}

// CountRelevantCommas подсчет запятых на внешнем уровне вложенности скобок.
// Запятая учитывается, только если вершина стека открытых скобок -- первая '(' в строке.
func CountRelevantCommas(line string) (int, error) {
	var stack []int
	first := strings.IndexByte(line, '(')
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				return n, &StructuralError{Pos: i, Err: ErrUnbalanced}
			}
			stack = stack[:len(stack)-1]
		case ',':
			if len(stack) > 0 && stack[len(stack)-1] == first {
				n++
			}
		}
	}
	return n, nil
}

// quoteBefore индекс ближайшей неэкранированной кавычки перед pos или -1.
func quoteBefore(s string, pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if s[i] == '"' && !escaped(s, i) {
			return i
		}
	}
	return -1
}

// quoteFrom индекс ближайшей неэкранированной кавычки начиная с pos или -1.
func quoteFrom(s string, pos int) int {
	for i := pos; i < len(s); i++ {
		if s[i] == '"' && !escaped(s, i) {
			return i
		}
	}
	return -1
}

// escaped true, если символу в позиции i предшествует нечетное число '\'.
func escaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
