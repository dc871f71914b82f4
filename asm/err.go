package asm

import (
	"github.com/ezrec/ossim/translate"
)

var f = translate.From

var (
	ErrEquateLabelMissing = translate.Errorf("EQU without a label")
	ErrOperandMissing     = translate.Errorf("operand missing")
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

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
