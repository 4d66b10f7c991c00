package codegen

import (
	"fmt"
	"io"
)

// emitter wraps an io.Writer with helpers for emitting IR text.
type emitter struct {
	w   io.Writer
	err error // first write error
	ids int   // next value id (%0, %1, ...)
}

// emit writes a formatted line to the output.
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format+"\n", args...)
}

// emitComment writes a comment line.
func (e *emitter) emitComment(format string, args ...interface{}) {
	e.emit("; "+format, args...)
}

// nextID allocates the next value id.
func (e *emitter) nextID() int {
	id := e.ids
	e.ids++
	return id
}

// valueName returns the IR name of a value id: %N.
func valueName(id int) string {
	return fmt.Sprintf("%%%d", id)
}
