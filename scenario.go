package main

import (
	"fmt"
)

type Command string

const (
	CommandInsertHead   Command = "insert_head"
	CommandInsertTail   Command = "insert_tail"
	CommandInsertAt     Command = "insert_at"
	CommandInsertBefore Command = "insert_before"
	CommandInsertAfter  Command = "insert_after"
	CommandDeleteHead   Command = "delete_head"
	CommandDeleteTail   Command = "delete_tail"
	CommandDeleteAt     Command = "delete_at"
	CommandDeleteValue  Command = "delete_value"
	CommandLength       Command = "length"
	CommandTraverse     Command = "traverse"
	CommandWalk         Command = "walk"
	CommandDestroy      Command = "destroy"
)

func (c Command) Valid() bool {
	switch c {
	case CommandInsertHead, CommandInsertTail, CommandInsertAt,
		CommandInsertBefore, CommandInsertAfter,
		CommandDeleteHead, CommandDeleteTail, CommandDeleteAt, CommandDeleteValue,
		CommandLength, CommandTraverse, CommandWalk, CommandDestroy:
		return true
	}
	return false
}

// Step is one list operation. Only the fields the command uses are read.
type Step struct {
	Op       Command `toml:"op"`
	Value    int     `toml:"value,omitempty"`
	Target   int     `toml:"target,omitempty"`
	Position int     `toml:"position,omitempty"`
	Count    int     `toml:"count,omitempty"`
}

func (s Step) String() string {
	switch s.Op {
	case CommandInsertHead, CommandInsertTail, CommandDeleteValue:
		return fmt.Sprintf("%s(%d)", s.Op, s.Value)
	case CommandInsertAt:
		return fmt.Sprintf("%s(%d, %d)", s.Op, s.Value, s.Position)
	case CommandInsertBefore, CommandInsertAfter:
		return fmt.Sprintf("%s(%d, %d)", s.Op, s.Value, s.Target)
	case CommandDeleteAt:
		return fmt.Sprintf("%s(%d)", s.Op, s.Position)
	case CommandWalk:
		return fmt.Sprintf("%s(%d)", s.Op, s.Count)
	default:
		return string(s.Op)
	}
}

type Scenario struct {
	Name string `toml:"name,omitempty"`
	// MaxNodes overrides the configured node cap when positive
	MaxNodes int    `toml:"max_nodes,omitempty"`
	Steps    []Step `toml:"steps"`
}

func (sc Scenario) Validate() error {
	if sc.MaxNodes < 0 {
		return fmt.Errorf("%w: scenario %q has negative max_nodes", ErrValidation, sc.Name)
	}

	for i, step := range sc.Steps {
		if !step.Op.Valid() {
			return fmt.Errorf("%w: scenario %q step %d has unknown op %q", ErrValidation, sc.Name, i+1, step.Op)
		}
		if step.Op == CommandWalk && step.Count < 0 {
			return fmt.Errorf("%w: scenario %q step %d walks a negative count", ErrValidation, sc.Name, i+1)
		}
	}

	return nil
}

// DemoScenarioName names the built in scenario returned by DefaultScenario
const DemoScenarioName = "demo"

// DefaultScenario reproduces the classic demo: three tail inserts, a head
// insert, and removing the head value again.
func DefaultScenario() Scenario {
	return Scenario{
		Name: DemoScenarioName,
		Steps: []Step{
			{Op: CommandInsertTail, Value: 10},
			{Op: CommandInsertTail, Value: 20},
			{Op: CommandInsertTail, Value: 30},
			{Op: CommandTraverse},
			{Op: CommandInsertHead, Value: 5},
			{Op: CommandTraverse},
			{Op: CommandDeleteValue, Value: 5},
			{Op: CommandTraverse},
			{Op: CommandLength},
		},
	}
}
