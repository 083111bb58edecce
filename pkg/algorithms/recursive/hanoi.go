package recursive

import (
	"fmt"

	"github.com/matzehuels/algotrace/pkg/trace"
)

// Disk count bounds accepted by the catalog.
const (
	MinDisks = 1
	MaxDisks = 8
)

// Peg names. Disks start on PegFrom and end on PegTo.
const (
	PegFrom = "A"
	PegVia  = "B"
	PegTo   = "C"
)

// HanoiListing is the pseudocode shown next to Tower of Hanoi traces.
var HanoiListing = []string{
	"function hanoi(n, from, to, via):",
	"  if n == 1:",
	"    move disk 1 from `from` to `to`",
	"    return",
	"  hanoi(n - 1, from, via, to)",
	"  move disk n from `from` to `to`",
	"  hanoi(n - 1, via, to, from)",
}

const (
	hnEnter     = 1
	hnBase      = 2
	hnBaseMove  = 3
	hnBaseExit  = 4
	hnCallLeft  = 5
	hnMove      = 6
	hnCallRight = 7
)

type hanoiPhase int

const (
	hanoiEnter hanoiPhase = iota
	hanoiAfterLeft
	hanoiAfterRight
)

// hanoiFrame is one simulated hanoi call.
type hanoiFrame struct {
	n             int
	from, to, via string
	phase         hanoiPhase
}

func (f hanoiFrame) call(depth int) *trace.Call {
	return &trace.Call{Disks: f.n, From: f.from, To: f.to, Via: f.via, Depth: depth}
}

func (f hanoiFrame) String() string {
	return fmt.Sprintf("hanoi(%d, %s, %s, %s)", f.n, f.from, f.to, f.via)
}

// Hanoi traces moving disks from peg A to peg C via B. Every call gets an
// enter step and an exit step, every disk move a step showing the pegs
// after the move. disks is clamped to [MinDisks, MaxDisks].
func Hanoi(disks int) trace.Trace {
	disks = min(max(disks, MinDisks), MaxDisks)
	rec := trace.NewRecorder(trace.Budget(1<<disks, 5))

	pegs := map[string][]int{PegFrom: {}, PegVia: {}, PegTo: {}}
	for d := disks; d >= 1; d-- {
		pegs[PegFrom] = append(pegs[PegFrom], d)
	}
	stack := []hanoiFrame{{n: disks, from: PegFrom, to: PegTo, via: PegVia}}
	moves := 0

	calls := func() trace.Panel {
		items := make([]string, 0, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			items = append(items, stack[i].String())
		}
		return trace.Panel{Name: "call stack", Items: items}
	}
	emit := func(line int, msg string, st trace.PegState) {
		st.Pegs = pegs
		rec.Emit(trace.PegStep(line, msg, st, calls()))
	}
	move := func(line int, f hanoiFrame, depth int) {
		src := pegs[f.from]
		disk := src[len(src)-1]
		pegs[f.from] = src[:len(src)-1]
		pegs[f.to] = append(pegs[f.to], disk)
		moves++
		emit(line, fmt.Sprintf("Move %d: disk %d from %s to %s.", moves, disk, f.from, f.to),
			trace.PegState{Phase: trace.PegMove, Move: &trace.Move{Disk: disk, From: f.from, To: f.to}, Call: f.call(depth)})
	}

	emit(trace.NoLine, fmt.Sprintf("%d disk(s) start on %s. Goal: move them all to %s using %s.", disks, PegFrom, PegTo, PegVia),
		trace.PegState{Phase: trace.PegInit})
	emit(hnEnter, fmt.Sprintf("Call %s.", stack[0]), trace.PegState{Phase: trace.PegEnter, Call: stack[0].call(0)})

	for len(stack) > 0 && !rec.Halted() {
		top := len(stack) - 1
		f := stack[top]
		switch f.phase {
		case hanoiEnter:
			if f.n == 1 {
				emit(hnBase, fmt.Sprintf("n = 1: the base case of %s.", f), trace.PegState{Phase: trace.PegEnter, Call: f.call(top)})
				move(hnBaseMove, f, top)
				emit(hnBaseExit, fmt.Sprintf("%s returns.", f), trace.PegState{Phase: trace.PegExit, Call: f.call(top)})
				stack = stack[:top]
				continue
			}
			emit(hnBase, fmt.Sprintf("n = %d: move the top %d disk(s) out of the way first.", f.n, f.n-1), trace.PegState{Phase: trace.PegEnter, Call: f.call(top)})
			child := hanoiFrame{n: f.n - 1, from: f.from, to: f.via, via: f.to}
			stack[top].phase = hanoiAfterLeft
			stack = append(stack, child)
			emit(hnCallLeft, fmt.Sprintf("Call %s.", child), trace.PegState{Phase: trace.PegEnter, Call: child.call(top + 1)})
		case hanoiAfterLeft:
			move(hnMove, f, top)
			child := hanoiFrame{n: f.n - 1, from: f.via, to: f.to, via: f.from}
			stack[top].phase = hanoiAfterRight
			stack = append(stack, child)
			emit(hnCallRight, fmt.Sprintf("Call %s.", child), trace.PegState{Phase: trace.PegEnter, Call: child.call(top + 1)})
		case hanoiAfterRight:
			emit(hnCallRight, fmt.Sprintf("%s returns.", f), trace.PegState{Phase: trace.PegExit, Call: f.call(top)})
			stack = stack[:top]
		}
	}

	emit(trace.NoLine, fmt.Sprintf("Done: all %d disk(s) are on %s after %d moves.", disks, PegTo, moves), trace.PegState{Phase: trace.PegDone})
	return trace.Trace{Algorithm: NameHanoi, Steps: rec.Steps()}
}

// MoveCount returns the number of move steps in a Hanoi trace.
func MoveCount(t trace.Trace) int {
	n := 0
	for _, s := range t.Steps {
		if s.Peg != nil && s.Peg.Phase == trace.PegMove {
			n++
		}
	}
	return n
}
