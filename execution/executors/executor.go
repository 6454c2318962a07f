package executors

import (
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
)

// State is the outcome of one Next call.
type State int

const (
	// Valid means the returned tuple is a result.
	Valid State = iota
	// Filtered means the row read in this step was rejected; keep pulling.
	Filtered
	// EndOfStream means the executor is exhausted.
	EndOfStream
)

func (s State) String() string {
	switch s {
	case Valid:
		return "Valid"
	case Filtered:
		return "Filtered"
	case EndOfStream:
		return "EndOfStream"
	}
	return "Unknown"
}

// Executor executes a plan
//
// Init initializes this executor.
// This function must be called before Next() is called!
//
// Next produces the next tuple from this executor. The tuple is non-nil only
// when the state is Valid.
//
// Reset rewinds the executor to its first tuple.
//
// Close releases every file handle held by the executor and its children.
type Executor interface {
	Init() error
	Next() (*tuple.Tuple, State, error)
	GetOutputSchema() *schema.Schema
	Reset() error
	Close() error
}
