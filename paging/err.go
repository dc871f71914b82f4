package paging

import (
	"github.com/ezrec/ossim/translate"
)

var (
	ErrCapacityInvalid = translate.Errorf("frame capacity invalid")
)
