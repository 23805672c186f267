// Package replay applies scripted sequences of operations to positional lists and checks the observed results
// against the expectations of the script.
package replay

import (
	"path/filepath"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/containers.go/configuration"
)

var (
	// ErrInvalidScript is returned if a script can not be loaded or is malformed.
	ErrInvalidScript = ierrors.New("invalid script")
	// ErrUnknownOperation is returned if a step refers to an operation that does not exist.
	ErrUnknownOperation = ierrors.New("unknown operation")
	// ErrExpectationFailed is returned if the result of a step does not match its expectation.
	ErrExpectationFailed = ierrors.New("expectation failed")
)

// Operation is the name of an operation of a positional list.
type Operation string

const (
	OpPush     Operation = "push"
	OpAddAt    Operation = "addAt"
	OpRemoveAt Operation = "removeAt"
	OpPop      Operation = "pop"
	OpGetAt    Operation = "getAt"
	OpLen      Operation = "len"
	OpRender   Operation = "render"
	OpClear    Operation = "clear"
)

var operationsByName = map[string]Operation{
	"push":     OpPush,
	"addat":    OpAddAt,
	"removeat": OpRemoveAt,
	"pop":      OpPop,
	"getat":    OpGetAt,
	"len":      OpLen,
	"render":   OpRender,
	"clear":    OpClear,
}

// ParseOperation returns the Operation with the given case-insensitive name.
func ParseOperation(name string) (Operation, error) {
	op, exists := operationsByName[strings.ToLower(name)]
	if !exists {
		return "", ierrors.Wrapf(ErrUnknownOperation, "%q", name)
	}

	return op, nil
}

// ReturnsValue returns true if the operation produces a value that can be checked by an Expectation.
func (o Operation) ReturnsValue() bool {
	switch o {
	case OpRemoveAt, OpPop, OpGetAt, OpLen:
		return true
	default:
		return false
	}
}

// Expectation describes the observable outcome of a step. Unset fields are not checked.
type Expectation struct {
	// Value is the value returned by removeAt, pop, getAt and len.
	Value *int `json:"value"`
	// Length is the length of the list after the step.
	Length *int `json:"length"`
	// Render is the string representation of the list after the step.
	Render *string `json:"render"`
	// Error is the kind of error the step fails with ("empty", "indexOutOfRange" or "unknown"). An empty Error
	// expects the step to succeed.
	Error string `json:"error"`
}

// Step is a single operation of a script.
type Step struct {
	Op     Operation    `json:"op"`
	Index  int          `json:"index"`
	Value  int          `json:"value"`
	Expect *Expectation `json:"expect"`
}

// Script is a named sequence of steps that is applied to a new list.
type Script struct {
	Name       string `json:"name"`
	ThreadSafe bool   `json:"threadSafe"`
	Steps      []Step `json:"steps"`
}

// LoadScript loads a script from a JSON, YAML or TOML file. Scripts without a name are named after their file.
func LoadScript(filePath string) (*Script, error) {
	config := configuration.New()
	if err := config.LoadFile(filePath); err != nil {
		return nil, ierrors.Join(ErrInvalidScript, err)
	}

	script := new(Script)
	if err := config.Unmarshal("", script); err != nil {
		return nil, ierrors.Join(ErrInvalidScript, err)
	}

	if script.Name == "" {
		script.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	if err := script.Validate(); err != nil {
		return nil, err
	}

	return script, nil
}

// Validate checks that the script has steps and normalizes the names of their operations.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ierrors.Wrapf(ErrInvalidScript, "script %s has no steps", s.Name)
	}

	for i := range s.Steps {
		op, err := ParseOperation(string(s.Steps[i].Op))
		if err != nil {
			return ierrors.Join(ierrors.Wrapf(ErrInvalidScript, "script %s, step %d", s.Name, i), err)
		}
		s.Steps[i].Op = op

		if expect := s.Steps[i].Expect; expect != nil {
			if _, known := errorKinds[strings.ToLower(expect.Error)]; !known {
				return ierrors.Wrapf(ErrInvalidScript, "script %s, step %d: unknown error kind %q", s.Name, i, expect.Error)
			}

			if expect.Value != nil && !op.ReturnsValue() {
				return ierrors.Wrapf(ErrInvalidScript, "script %s, step %d: %s does not return a value", s.Name, i, op)
			}
		}
	}

	return nil
}
