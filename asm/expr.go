// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpr does compile-time $(...) evaluations, with the equates bound as
// integers.
func evalExpr(expr string, equates map[string]int) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for key, v := range equates {
		pred[key] = starlark.MakeInt(v)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// number resolves a numeric directive operand: either a plain decimal
// value or a $(...) expression over the equates.
func number(operand string, equates map[string]int) (value int, err error) {
	if len(operand) == 0 {
		err = ErrOperandMissing
		return
	}
	if strings.HasPrefix(operand, "$(") && strings.HasSuffix(operand, ")") {
		return evalExpr(operand[2:len(operand)-1], equates)
	}
	value, err = strconv.Atoi(operand)
	if err != nil {
		err = ErrParseNumber(operand)
	}
	return
}
