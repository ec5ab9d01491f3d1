package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownReference is returned when an edge points at a node ID outside the node set.
var ErrUnknownReference = errors.New("unknown node reference")

// ErrDuplicateNode is returned when two nodes of the same graph share an ID.
var ErrDuplicateNode = errors.New("duplicate node id")

// ErrNilGraph is returned when an operation needs a graph and gets none.
var ErrNilGraph = errors.New("nil graph")

// ReferenceError describes a structural defect of a graph.
// It wraps ErrUnknownReference or ErrDuplicateNode.
type ReferenceError struct {
	Err    error
	NodeID string
	Edge   *Edge // nil for duplicate nodes
}

func (e *ReferenceError) Error() string {
	if e.Edge != nil {
		return fmt.Sprintf("edge %s -> %s: %v %q", e.Edge.Source, e.Edge.Target, e.Err, e.NodeID)
	}
	return fmt.Sprintf("%v %q", e.Err, e.NodeID)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}
