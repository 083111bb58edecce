package trace

import "fmt"

// Budget bounds used by generators to size their step cap.
const (
	// MinBudget is the smallest step cap any recorder uses.
	MinBudget = 64

	// MaxBudget caps every recorder regardless of input size.
	MaxBudget = 20000
)

// Budget returns a step cap proportional to an input of size n, where each
// element may cost up to perItem steps.
func Budget(n, perItem int) int {
	b := MinBudget + n*perItem
	if b > MaxBudget || b < 0 {
		return MaxBudget
	}
	return b
}

// Recorder accumulates the steps of a single generator invocation.
//
// Emit deep-copies every step, so generators may keep mutating their working
// slices and maps after emitting. The zero value is not usable; create
// recorders with [NewRecorder]. A Recorder is not safe for concurrent use,
// and generators never share one across invocations.
type Recorder struct {
	steps  []Step
	limit  int
	halted bool
}

// NewRecorder creates a recorder that accepts at most limit steps before
// appending a diagnostic step and halting. A limit <= 0 means [MaxBudget].
func NewRecorder(limit int) *Recorder {
	if limit <= 0 || limit > MaxBudget {
		limit = MaxBudget
	}
	return &Recorder{limit: limit}
}

// Emit appends a copy of s. It reports whether the step was recorded; once
// the recorder has halted every call is ignored and returns false.
func (r *Recorder) Emit(s Step) bool {
	if r.halted {
		return false
	}
	if len(r.steps) >= r.limit {
		r.halt(s, fmt.Sprintf("Stopped after %d steps: step limit reached.", r.limit))
		return false
	}
	r.steps = append(r.steps, s.Clone())
	return true
}

// Diagnose appends a terminal diagnostic step with no source line, built
// from the kind and payload of like, and halts the recorder.
func (r *Recorder) Diagnose(like Step, msg string) {
	if r.halted {
		return
	}
	r.halt(like, msg)
}

func (r *Recorder) halt(like Step, msg string) {
	d := like.Clone()
	d.Line = NoLine
	d.Message = msg
	r.steps = append(r.steps, d)
	r.halted = true
}

// Halted reports whether the recorder stopped accepting steps.
func (r *Recorder) Halted() bool { return r.halted }

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded steps. The recorder must not be used afterwards.
func (r *Recorder) Steps() []Step {
	if r.steps == nil {
		return []Step{}
	}
	return r.steps
}

// Guard caps the iterations of a loop whose termination depends on the
// correctness of the algorithm being traced.
type Guard struct {
	limit int
	count int
}

// NewGuard creates a guard permitting limit iterations.
func NewGuard(limit int) *Guard {
	if limit < 1 {
		limit = 1
	}
	return &Guard{limit: limit}
}

// Next counts one iteration and reports whether the loop may continue.
func (g *Guard) Next() bool {
	g.count++
	return g.count <= g.limit
}

// Limit returns the configured iteration cap.
func (g *Guard) Limit() int { return g.limit }
