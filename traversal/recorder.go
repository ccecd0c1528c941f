package traversal

// Recorder collects the step trace for a single run. It is private to one
// invocation and not safe for concurrent use; the algorithms are synchronous
// by contract, so none is needed.
//
// Every Record call deep-copies the slices and the current annotation map,
// so steps stay frozen no matter what the algorithm mutates afterwards.
type Recorder struct {
	steps       []Step
	annotations map[string]string
}

// NewRecorder returns a Recorder sized for a graph of n nodes.
func NewRecorder(n int) *Recorder {
	return &Recorder{
		steps:       make([]Step, 0, n),
		annotations: make(map[string]string, n),
	}
}

// Annotate sets the current label for a node. The label is captured by every
// subsequent Record until overwritten.
func (r *Recorder) Annotate(id, label string) {
	r.annotations[id] = label
}

// Record appends one step with the given current node, visited order,
// frontier contents, and display line, snapshotting all of them.
func (r *Recorder) Record(current string, visited, structure []string, display string) {
	r.steps = append(r.steps, Step{
		Current:         current,
		Visited:         copyIDs(visited),
		Structure:       copyIDs(structure),
		Display:         display,
		NodeAnnotations: copyAnnotations(r.annotations),
	})
}

// Result assembles the final immutable Result from the recorded trace, the
// finalization order, and the per-node log values.
func (r *Recorder) Result(order []string, log map[string]Number) *Result {
	return &Result{
		Traversal:       copyIDs(order),
		Log:             log,
		Steps:           r.steps,
		NodeAnnotations: copyAnnotations(r.annotations),
	}
}

func copyIDs(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copyAnnotations(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
