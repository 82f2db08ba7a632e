package vm

import (
	"github.com/jcorbin/toypascal/internal/flushio"
)

// flushLineWriter adapts a flushio.WriteFlusher to lineWriter: append one
// text line, flushing immediately so output interleaves correctly with any
// interactive INPUT prompting on the same terminal.
type flushLineWriter struct {
	wf flushio.WriteFlusher
}

func (w flushLineWriter) WriteLine(line string) error {
	if _, err := w.wf.Write([]byte(line + "\n")); err != nil {
		return err
	}
	return w.wf.Flush()
}
