package traversal

// Replay is a restartable cursor over a finished Result's steps. The trace
// is fully formed before a Replay exists, so pausing, restarting from step
// zero, or abandoning a replay cannot affect engine correctness.
type Replay struct {
	steps []Step
	pos   int
}

// NewReplay returns a cursor positioned before the first step of res.
func NewReplay(res *Result) *Replay {
	return &Replay{steps: res.Steps}
}

// Len returns the total number of steps in the trace.
func (p *Replay) Len() int { return len(p.steps) }

// Pos returns how many steps have been consumed so far.
func (p *Replay) Pos() int { return p.pos }

// Next returns the next step and advances the cursor. The second return is
// false once the trace is exhausted.
func (p *Replay) Next() (Step, bool) {
	if p.pos >= len(p.steps) {
		return Step{}, false
	}
	s := p.steps[p.pos]
	p.pos++
	return s, true
}

// Reset rewinds the cursor to step zero.
func (p *Replay) Reset() { p.pos = 0 }
