package facetgrid

import (
	"io"
	"log"
)

var debug = log.New(io.Discard, "facetgrid: ", 0)

// SetDebugOutput directs tracing of layout, dispatch and axis scaling
// to w. A nil w turns tracing off.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	debug.SetOutput(w)
}
