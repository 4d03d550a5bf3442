package trace

// Step is a single structured record of an algorithm decision.
// Concrete step types live with the algorithm that emits them;
// Render produces the human-readable sentence shown to students.
type Step interface {
	Render() string
}

// Trace is an append-only ordered sequence of steps describing one
// algorithm run. It is built during the run and only consumed afterwards.
type Trace struct {
	steps []Step
}

// New creates an empty trace.
func New() *Trace {
	return &Trace{}
}

// Append adds a step to the end of the trace.
func (t *Trace) Append(s Step) {
	t.steps = append(t.steps, s)
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int {
	return len(t.steps)
}

// Steps returns the recorded steps in order.
func (t *Trace) Steps() []Step {
	return t.steps
}

// Lines renders every step to its display text, in order.
func (t *Trace) Lines() []string {
	lines := make([]string, len(t.steps))
	for i, s := range t.steps {
		lines[i] = s.Render()
	}
	return lines
}
