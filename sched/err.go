package sched

import (
	"github.com/ezrec/ossim/translate"
)

var (
	ErrQuantumInvalid = translate.Errorf("quantum invalid")
)
