// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dequetest

import (
	_ "embed"
	"fmt"
	"strconv"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// ErrUnknownOp is reported by ParseScenarios and Run for an unrecognised
// operation and may be tested for using errors.Is.
var ErrUnknownOp = errors.New("unknown operation")

// Operation names.
const (
	AddFirst    = "addFirst"
	AddLast     = "addLast"
	RemoveFirst = "removeFirst"
	RemoveLast  = "removeLast"
	Get         = "get"
	Size        = "size"
	Items       = "items"
)

// Op represents a single operation and, where appropriate, its expected
// result. In YAML an Op is a mapping with a single key, the operation
// name:
//
//	- addLast: 1        # AddLast(1)
//	- removeFirst: 0    # RemoveFirst() returns 0
//	- removeLast: ~     # RemoveLast() returns no value
//	- get: [2, 7]       # Get(2) returns 7, use ~ for no value
//	- size: 2           # Size() returns 2
//	- items: [1, 2]     # All() yields 1, 2
type Op struct {
	Name  string
	Value int   // value for add operations, expected size for size.
	Index int   // index for get.
	Want  *int  // expected result for remove and get, nil for no value.
	Items []int // expected contents for items.

	line int // source line, when parsed.
}

// Scenario is a named sequence of operations.
type Scenario struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (op *Op) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %v: an operation must be a mapping with a single key", node.Line)
	}
	key, val := node.Content[0], node.Content[1]
	op.Name = key.Value
	op.line = key.Line
	var err error
	switch op.Name {
	case AddFirst, AddLast, Size:
		err = val.Decode(&op.Value)
	case RemoveFirst, RemoveLast:
		op.Want, err = optional(val)
	case Get:
		if val.Kind != yaml.SequenceNode || len(val.Content) != 2 {
			return fmt.Errorf("line %v: get requires [index, want]", val.Line)
		}
		if err = val.Content[0].Decode(&op.Index); err == nil {
			op.Want, err = optional(val.Content[1])
		}
	case Items:
		err = val.Decode(&op.Items)
	default:
		// Reported by ParseScenarios since errors returned here lose
		// their identity when annotated with the source.
		return nil
	}
	if err != nil {
		return fmt.Errorf("line %v: %v: %w", val.Line, op.Name, err)
	}
	return nil
}

func known(name string) bool {
	switch name {
	case AddFirst, AddLast, RemoveFirst, RemoveLast, Get, Size, Items:
		return true
	}
	return false
}

func optional(node *yaml.Node) (*int, error) {
	if node.ShortTag() == "!!null" {
		return nil, nil
	}
	var v int
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func formatOptional(v *int) string {
	if v == nil {
		return "<none>"
	}
	return strconv.Itoa(*v)
}

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op.Name {
	case AddFirst, AddLast:
		return fmt.Sprintf("%v(%v)", op.Name, op.Value)
	case RemoveFirst, RemoveLast:
		return fmt.Sprintf("%v() == %v", op.Name, formatOptional(op.Want))
	case Get:
		return fmt.Sprintf("get(%v) == %v", op.Index, formatOptional(op.Want))
	case Size:
		return fmt.Sprintf("size() == %v", op.Value)
	case Items:
		return fmt.Sprintf("items() == %v", op.Items)
	}
	return op.Name
}

// ParseScenarios parses a YAML document of the form:
//
//	scenarios:
//	  - name: example
//	    ops:
//	      - addLast: 1
//	      - removeFirst: 1
func ParseScenarios(spec []byte) ([]Scenario, error) {
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := cmdyaml.ParseConfigStrict(spec, &doc); err != nil {
		return nil, err
	}
	errs := &errors.M{}
	for _, sc := range doc.Scenarios {
		for _, op := range sc.Ops {
			if !known(op.Name) {
				errs.Append(fmt.Errorf("%v: line %v: %q: %w", sc.Name, op.line, op.Name, ErrUnknownOp))
			}
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return doc.Scenarios, nil
}

// Scenarios returns the built-in scenarios that every deque
// implementation is expected to pass.
func Scenarios() ([]Scenario, error) {
	return ParseScenarios(defaultScenarios)
}
