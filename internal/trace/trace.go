package trace

import (
	"bytes"
	"fmt"

	"github.com/markusressel/servo2go/internal/control_loop"
	"github.com/natefinch/atomic"
)

// Write stores the process values of the given samples at path, one
// "index<TAB>value" line per sample. The file is replaced atomically.
func Write(path string, samples []control_loop.Sample) error {
	var buf bytes.Buffer
	for _, sample := range samples {
		_, _ = fmt.Fprintf(&buf, "%d\t%v\n", sample.Index, sample.Next)
	}
	return atomic.WriteFile(path, &buf)
}
