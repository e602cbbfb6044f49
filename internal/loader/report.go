package loader

// Status classifies the outcome of one load attempt.
type Status string

const (
	// StatusMounted indicates the tool's router was mounted on the host.
	StatusMounted Status = "mounted"

	// StatusNoRouter indicates the file had no registered router. This is
	// informational, not an error: shared helper files live in the tree too.
	StatusNoRouter Status = "no-router"

	// StatusFailed indicates router construction returned an error or
	// panicked. The failure is isolated to that tool.
	StatusFailed Status = "failed"

	// StatusConflict indicates the derived prefix collides with an earlier
	// mount. The earlier mount wins.
	StatusConflict Status = "conflict"
)

// Outcome records one load attempt.
type Outcome struct {
	Identifier string
	Prefix     string
	Status     Status
	Err        error
}

// Report aggregates the outcomes of a registration run.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Mounted returns the outcomes that resulted in a live mount.
func (r *Report) Mounted() []Outcome {
	return r.filter(StatusMounted)
}

// Failed returns the outcomes whose router construction failed.
func (r *Report) Failed() []Outcome {
	return r.filter(StatusFailed)
}

// Prefixes returns the mounted URL prefixes in registration order.
func (r *Report) Prefixes() []string {
	var prefixes []string
	for _, o := range r.Outcomes {
		if o.Status == StatusMounted {
			prefixes = append(prefixes, o.Prefix)
		}
	}
	return prefixes
}

func (r *Report) filter(status Status) []Outcome {
	var outcomes []Outcome
	for _, o := range r.Outcomes {
		if o.Status == status {
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}
