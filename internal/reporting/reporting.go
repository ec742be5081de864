// Package reporting renders array-core values and run summaries for
// humans: the REPL, the CLI's result and error output, and the
// websocket stream's frames all go through here rather than formatting
// ad hoc.
package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"arraycore/internal/array"
	arrerrors "arraycore/internal/errors"
)

// FormatValue renders a Value the way the REPL and CLI print results:
// scalars bare, char arrays as strings, everything else bracketed.
func FormatValue(v array.Value) string {
	switch x := v.(type) {
	case array.Number:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case array.Char:
		return string(rune(x))
	case *array.Array:
		return formatArray(x)
	case array.Callable:
		return fmt.Sprintf("<fn %s>", x.Name())
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatArray(a *array.Array) string {
	if a.Rank() == 0 {
		return FormatValue(a.At(0))
	}
	if a.Storage == array.StorageChars && a.Rank() == 1 {
		return string(a.Chars)
	}
	n := a.Len()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = FormatValue(a.MajorCell(i))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatError renders a runtime error the way the REPL prints failures,
// adding the array-core ErrorKind when the error came from array.Env.
func FormatError(err error) string {
	if rerr, ok := err.(*arrerrors.RuntimeErr); ok {
		return rerr.Error()
	}
	return err.Error()
}

// RunSummary records one verb-pipeline evaluation: how many ops ran,
// how big the result was, and how long it took. netstream builds one
// per pipeline it runs and sends String's output as the result frame.
type RunSummary struct {
	mu       sync.Mutex
	OpCount  int
	Elapsed  time.Duration
	Result   array.Value
	Failed   bool
	ErrorMsg string
}

// NewRunSummary starts a summary for a pipeline about to run.
func NewRunSummary() *RunSummary {
	return &RunSummary{}
}

// RecordOp increments the op counter; netstream calls this once per
// opcode the VM dispatched (constants, swaps and returns included).
func (s *RunSummary) RecordOp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.OpCount++
}

// Finish records the outcome of the run: either a result value or an
// error, plus the wall-clock time it took.
func (s *RunSummary) Finish(result array.Value, err error, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Elapsed = elapsed
	if err != nil {
		s.Failed = true
		s.ErrorMsg = FormatError(err)
		return
	}
	s.Result = result
}

// String renders the summary the way netstream's result frames carry
// it: op count and element count in human
// units, elapsed time, and either the rendered result or the error.
func (s *RunSummary) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s ops in %s", humanize.Comma(int64(s.OpCount)), s.Elapsed))
	if s.Failed {
		sb.WriteString(fmt.Sprintf("\n  error: %s", s.ErrorMsg))
		return sb.String()
	}
	if s.Result != nil {
		sb.WriteString(fmt.Sprintf("\n  result (%s elements): %s",
			humanize.Comma(int64(resultSize(s.Result))), FormatValue(s.Result)))
	}
	return sb.String()
}

func resultSize(v array.Value) int {
	if a, ok := v.(*array.Array); ok {
		return a.Count()
	}
	return 1
}
