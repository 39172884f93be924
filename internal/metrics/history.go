package metrics

import "time"

// Pass is the outcome of one training sweep.
type Pass struct {
	Iteration int
	Changed   bool
	Duration  time.Duration
	Result    Result
}

// History accumulates pass outcomes across a training run.
type History struct {
	passes  []Pass
	elapsed time.Duration
}

// Record appends the outcome of a pass.
func (h *History) Record(p Pass) {
	h.passes = append(h.passes, p)
	h.elapsed += p.Duration
}

// Passes returns a copy of the recorded passes in order.
func (h *History) Passes() []Pass {
	return append([]Pass(nil), h.passes...)
}

// Len returns the number of recorded passes.
func (h *History) Len() int {
	return len(h.passes)
}

// Snapshot returns aggregated timing and the latest result.
func (h *History) Snapshot() Snapshot {
	snap := Snapshot{Passes: len(h.passes)}
	if len(h.passes) == 0 {
		return snap
	}
	snap.AvgPassMS = (h.elapsed.Seconds() * 1000) / float64(len(h.passes))
	last := h.passes[len(h.passes)-1]
	snap.Last = last.Result
	for _, p := range h.passes {
		if p.Result.Accuracy() > snap.BestAccuracy {
			snap.BestAccuracy = p.Result.Accuracy()
			snap.BestIteration = p.Iteration
		}
	}
	return snap
}

// Snapshot represents loggable training metrics.
type Snapshot struct {
	Passes        int
	AvgPassMS     float64
	Last          Result
	BestAccuracy  float64
	BestIteration int
}
