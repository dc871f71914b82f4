package macro

import (
	"github.com/ezrec/ossim/translate"
)

var f = translate.From

var (
	ErrMacroNesting   = translate.Errorf("MACRO in MACRO prohibited")
	ErrMacroDuplicate = translate.Errorf("MACRO duplicated")
	ErrMacroOpen      = translate.Errorf("MACRO without MEND")
	ErrMendLonely     = translate.Errorf("MEND without MACRO")
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
