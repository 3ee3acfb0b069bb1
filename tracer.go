package quizsolver

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Tracer writes a timestamped dump of every candidate an evaluation
// examined, with its per-question local verdicts.
type Tracer struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	now    func() time.Time
}

// NewTracer traces to w
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w, now: time.Now}
}

// NewFileTracer creates (or truncates) path and traces to it
func NewFileTracer(path string) (*Tracer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}

	tracer := NewTracer(file)
	tracer.closer = file
	tracer.Logf("=== Quiz Solver Trace ===\n")
	tracer.Logf("Started: %s\n\n", tracer.now().Format(time.RFC3339))
	return tracer, nil
}

// Logf writes a formatted entry with timestamp
func (t *Tracer) Logf(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(format, args...)
}

func (t *Tracer) logf(format string, args ...interface{}) {
	timestamp := t.now().Format("15:04:05.000")
	fmt.Fprintf(t.w, "[%s] %s", timestamp, fmt.Sprintf(format, args...))
}

// LogEvaluation dumps the full pool of eval, one line per candidate:
// the answer vector, each question's local verdict, the aggregate flag and
// whether the candidate is a solution.
func (t *Tracer) LogEvaluation(eval *Evaluation) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.logf("=== QUIZ (%s) ===\n", eval.Quiz)
	for i := range eval.Pool {
		rs := &eval.Pool[i]
		t.logf("%s | local %s | all=%t solution=%t\n",
			formatVector(rs.Responses()), formatVerdicts(rs), rs.AllLocallyConsistent, eval.Survived(i))
	}
	t.logf("candidates=%d locally_consistent=%d solutions=%d\n\n",
		eval.Candidates(), eval.LocallyConsistent(), len(eval.Solutions))
}

// Close closes the trace file, if the tracer owns one
func (t *Tracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closer == nil {
		return nil
	}
	t.logf("=== Trace Complete ===\n")
	t.logf("Completed: %s\n", t.now().Format(time.RFC3339))
	err := t.closer.Close()
	t.closer = nil
	return err
}

func formatVector(r Responses) string {
	var b strings.Builder
	for _, each := range r {
		if each {
			b.WriteByte('T')
		} else {
			b.WriteByte('F')
		}
	}
	return b.String()
}

func formatVerdicts(rs *ResultSet) string {
	var b strings.Builder
	for _, r := range rs.Results {
		if r.Consistent.OK() {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
