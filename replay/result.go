package replay

import (
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/containers.go/ds/positionallist"
)

const (
	errorKindNone            = ""
	errorKindEmpty           = "empty"
	errorKindIndexOutOfRange = "indexoutofrange"
	errorKindUnknown         = "unknown"
	errorKindOther           = "other"
)

// errorKinds contains the lower cased error kinds that can be expected by a step.
var errorKinds = map[string]struct{}{
	errorKindNone:            {},
	errorKindEmpty:           {},
	errorKindIndexOutOfRange: {},
	errorKindUnknown:         {},
}

// errorKind returns the lower cased kind of the given list error.
func errorKind(err error) string {
	switch {
	case err == nil:
		return errorKindNone
	case ierrors.Is(err, positionallist.ErrEmpty):
		return errorKindEmpty
	case ierrors.Is(err, positionallist.ErrIndexOutOfRange):
		return errorKindIndexOutOfRange
	case ierrors.Is(err, positionallist.ErrUnknown):
		return errorKindUnknown
	default:
		return errorKindOther
	}
}

// Result is the observed outcome of a single step.
type Result struct {
	// Step is the position of the step in its script.
	Step int
	// Op is the operation that was applied.
	Op Operation
	// Index is the position the operation was applied to.
	Index int
	// Value is the value returned by the operation, if any.
	Value int
	// Err is the error returned by the operation.
	Err error
	// Length is the length of the list after the step.
	Length int
	// Render is the string representation of the list after the step.
	Render string
}

// String returns a human-readable version of the Result.
func (r *Result) String() string {
	errString := "<nil>"
	if r.Err != nil {
		errString = r.Err.Error()
	}

	return stringify.Struct("Result",
		stringify.NewStructField("step", r.Step),
		stringify.NewStructField("op", string(r.Op)),
		stringify.NewStructField("index", r.Index),
		stringify.NewStructField("value", r.Value),
		stringify.NewStructField("err", errString),
		stringify.NewStructField("length", r.Length),
		stringify.NewStructField("render", r.Render),
	)
}

// check compares the Result against the given Expectation.
func (r *Result) check(expect *Expectation) error {
	if expect == nil {
		return nil
	}

	if expectedKind, actualKind := strings.ToLower(expect.Error), errorKind(r.Err); expectedKind != actualKind {
		return ierrors.Wrapf(ErrExpectationFailed, "step %d (%s): expected error %q, got %v", r.Step, r.Op, expect.Error, r.Err)
	}

	if expect.Value != nil && r.Err == nil && *expect.Value != r.Value {
		return ierrors.Wrapf(ErrExpectationFailed, "step %d (%s): expected value %d, got %d", r.Step, r.Op, *expect.Value, r.Value)
	}

	if expect.Length != nil && *expect.Length != r.Length {
		return ierrors.Wrapf(ErrExpectationFailed, "step %d (%s): expected length %d, got %d", r.Step, r.Op, *expect.Length, r.Length)
	}

	if expect.Render != nil && *expect.Render != r.Render {
		return ierrors.Wrapf(ErrExpectationFailed, "step %d (%s): expected list %q, got %q", r.Step, r.Op, *expect.Render, r.Render)
	}

	return nil
}

// Report is the outcome of a script.
type Report struct {
	// Script is the name of the script.
	Script string
	// Results holds the result of every executed step.
	Results []*Result
	// Failures holds the failed expectations.
	Failures []error
}

// Failed returns true if any expectation of the script failed.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

// Err returns the failures of the script joined into a single error, or nil if the script succeeded.
func (r *Report) Err() error {
	return ierrors.Join(r.Failures...)
}

// String returns a human-readable version of the Report.
func (r *Report) String() string {
	return stringify.Struct("Report",
		stringify.NewStructField("script", r.Script),
		stringify.NewStructField("steps", len(r.Results)),
		stringify.NewStructField("failures", len(r.Failures)),
	)
}
