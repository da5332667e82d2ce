package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gregoryjjb/clist/circularlist"
)

var rlog zerolog.Logger

func init() {
	rlog = log.With().Str("component", "runner").Logger()
}

type StepResult struct {
	Step Step
	Err  error
}

type Report struct {
	Scenario string
	Results  []StepResult
	// Final is the list contents right before it was destroyed
	Final []int
}

// Rejected returns the steps the list refused
func (r Report) Rejected() []StepResult {
	var rejected []StepResult
	for _, result := range r.Results {
		if result.Err != nil {
			rejected = append(rejected, result)
		}
	}
	return rejected
}

// Runner executes scenarios against a fresh list, printing traversals to out
type Runner struct {
	config  *Config
	storage *Storage
	out     io.Writer
}

func NewRunner(config *Config, storage *Storage, out io.Writer) *Runner {
	return &Runner{
		config:  config,
		storage: storage,
		out:     out,
	}
}

// Load reads the named scenario from storage. The demo scenario is built in
// and only needs to be stored to be customized.
func (r *Runner) Load(name string) (Scenario, error) {
	if err := r.storage.ScenarioExists(name); err != nil {
		if errors.Is(err, ErrNotExist) && name == DemoScenarioName {
			rlog.Debug().Msg("Using built in demo scenario")
			return DefaultScenario(), nil
		}
		return Scenario{}, err
	}

	return r.storage.ReadScenario(name)
}

// Run executes every step of the scenario. Rejected steps are recorded and
// the run carries on; any other failure aborts the run.
func (r *Runner) Run(sc Scenario) (Report, error) {
	if err := sc.Validate(); err != nil {
		return Report{}, err
	}

	maxNodes := r.config.MaxNodes()
	if sc.MaxNodes > 0 {
		maxNodes = sc.MaxNodes
	}

	logger := rlog.With().Str("scenario", sc.Name).Logger()
	logger.Info().
		Int("steps", len(sc.Steps)).
		Int("max_nodes", maxNodes).
		Msg("Running scenario")

	list := circularlist.New(circularlist.WithMaxNodes(maxNodes))
	defer list.Destroy()

	report := Report{Scenario: sc.Name}
	for i, step := range sc.Steps {
		err := r.execute(list, step)
		report.Results = append(report.Results, StepResult{Step: step, Err: err})

		switch {
		case err == nil:
			logger.Debug().
				Int("step", i+1).
				Str("op", step.String()).
				Int("length", list.Length()).
				Msg("Step done")

		case errors.Is(err, circularlist.ErrRejected):
			logger.Warn().
				Err(err).
				Int("step", i+1).
				Str("op", step.String()).
				Msg("Step rejected")

		default:
			logger.Err(err).
				Int("step", i+1).
				Str("op", step.String()).
				Msg("Step failed, aborting scenario")
			report.Final = list.Traverse()
			return report, fmt.Errorf("step %d %s: %w", i+1, step, err)
		}
	}

	report.Final = list.Traverse()
	return report, nil
}

func (r *Runner) execute(list *circularlist.List, step Step) error {
	switch step.Op {
	case CommandInsertHead:
		return list.InsertHead(step.Value)

	case CommandInsertTail:
		return list.InsertTail(step.Value)

	case CommandInsertAt:
		return list.InsertAt(step.Value, step.Position)

	case CommandInsertBefore:
		return list.InsertBefore(step.Value, step.Target)

	case CommandInsertAfter:
		return list.InsertAfter(step.Value, step.Target)

	case CommandDeleteHead:
		return list.DeleteHead()

	case CommandDeleteTail:
		return list.DeleteTail()

	case CommandDeleteAt:
		return list.DeleteAt(step.Position)

	case CommandDeleteValue:
		return list.DeleteValue(step.Value)

	case CommandTraverse:
		_, err := fmt.Fprintln(r.out, list.String())
		return err

	case CommandLength:
		_, err := fmt.Fprintf(r.out, "Length: %d\n", list.Length())
		return err

	case CommandWalk:
		return r.walk(list, step.Count)

	case CommandDestroy:
		list.Destroy()
		return nil
	}

	return fmt.Errorf("%w: unknown op %q", ErrValidation, step.Op)
}

// walk prints count values going round the ring from the entry point
func (r *Runner) walk(list *circularlist.List, count int) error {
	c := list.Cursor()
	if _, ok := c.Current(); !ok {
		_, err := fmt.Fprintln(r.out, list.String())
		return err
	}

	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v, _ := c.Current()
		values = append(values, strconv.Itoa(v))
		c.Advance()
	}

	_, err := fmt.Fprintln(r.out, strings.Join(values, " "))
	return err
}
