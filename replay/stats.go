package replay

import (
	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/stringify"
)

// Stats counts the work of a Runner. It is safe to be updated by concurrently running scripts.
type Stats struct {
	ScriptsRun         atomic.Int64
	ScriptsFailed      atomic.Int64
	StepsExecuted      atomic.Int64
	ExpectationsFailed atomic.Int64
}

// String returns a human-readable version of the Stats.
func (s *Stats) String() string {
	return stringify.Struct("Stats",
		stringify.NewStructField("scriptsRun", int(s.ScriptsRun.Load())),
		stringify.NewStructField("scriptsFailed", int(s.ScriptsFailed.Load())),
		stringify.NewStructField("stepsExecuted", int(s.StepsExecuted.Load())),
		stringify.NewStructField("expectationsFailed", int(s.ExpectationsFailed.Load())),
	)
}
