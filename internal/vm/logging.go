package vm

import (
	"fmt"
	"strings"
)

// logging is a small mixin that renders trace lines with a column-aligned
// mark, the way a step-by-step "here's what just happened" trace reads
// best: every line's mark is padded out to the widest mark seen so far.
type logging struct {
	logfn func(mess string, args ...any)

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...any) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
