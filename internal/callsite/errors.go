package callsite

import (
	"errors"
	"fmt"
)

// ErrUnbalanced -- закрывающая скобка без парной открывающей в списке аргументов.
var ErrUnbalanced = errors.New("unbalanced closing parenthesis")

// StructuralError ошибка разбора списка аргументов вызова.
// Pos -- позиция символа в рабочей строке подсчета запятых.
type StructuralError struct {
	Pos int
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error at offset %d: %v", e.Pos, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// CallSiteError ошибка обработки одного вызова, с привязкой к файлу и строке.
type CallSiteError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *CallSiteError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *CallSiteError) Unwrap() error {
	return e.Err
}
