package monosat

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SearchPosition is a snapshot the theory hands a Tracer after a
// propagation pass: which bitvectors were touched and which
// comparisons are currently contradictory.
type SearchPosition interface {
	DirtyBVs() []int
	Conflicts() []AppliedComparison
}

// AppliedComparison names a single comparison record together with
// the bitvector id it was raised against, for tracing and conflict
// reporting.
type AppliedComparison struct {
	BV         int
	ComparisonIndex int
	Literal    string
}

// Tracer is notified after every propagation pass. The default no-ops;
// LoggingTracer emits one logrus line listing the dirty bitvectors and
// one per conflicting comparison.
type Tracer interface {
	Trace(p SearchPosition)
}

// DefaultTracer discards every trace.
type DefaultTracer struct{}

func (DefaultTracer) Trace(SearchPosition) {}

// propagationSnapshot is the concrete SearchPosition a Propagate pass
// hands its Tracer: the bitvectors that entered the pass dirty, and
// any comparison the pass found contradictory.
type propagationSnapshot struct {
	dirty     []int
	conflicts []AppliedComparison
}

func (s *propagationSnapshot) DirtyBVs() []int               { return s.dirty }
func (s *propagationSnapshot) Conflicts() []AppliedComparison { return s.conflicts }

// LoggingTracer writes a human-readable trace line to the supplied
// logrus logger so it composes with the rest of the ambient logging.
type LoggingTracer struct {
	Log logrus.FieldLogger
}

func (t LoggingTracer) Trace(p SearchPosition) {
	if t.Log == nil {
		return
	}
	t.Log.Debugf("dirty bvs: %v", p.DirtyBVs())
	for _, c := range p.Conflicts() {
		t.Log.Debugf("conflict: %s", fmt.Sprintf("bv%d#%d %s", c.BV, c.ComparisonIndex, c.Literal))
	}
}
