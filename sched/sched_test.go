package sched

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The fixed four-process set, hand-traced for all four policies.
var procs = []Process{
	{Pid: 1, Arrival: 0, Burst: 5, Priority: 2},
	{Pid: 2, Arrival: 1, Burst: 3, Priority: 1},
	{Pid: 3, Arrival: 2, Burst: 8, Priority: 3},
	{Pid: 4, Arrival: 3, Burst: 6, Priority: 2},
}

func completions(result Result) map[int]int {
	out := make(map[int]int, len(result.Processes))
	for _, p := range result.Processes {
		out[p.Pid] = p.Completion
	}
	return out
}

func TestFcfs(t *testing.T) {
	assert := assert.New(t)

	result := Fcfs(procs)
	assert.Equal(map[int]int{1: 5, 2: 8, 3: 16, 4: 22}, completions(result))
	assert.InDelta(11.25, result.AvgTurnaround, 1e-9)
	assert.InDelta(5.75, result.AvgWaiting, 1e-9)
}

func TestSjf(t *testing.T) {
	assert := assert.New(t)

	result := Sjf(procs)
	assert.Equal(map[int]int{1: 8, 2: 4, 3: 22, 4: 14}, completions(result))
	assert.InDelta(10.5, result.AvgTurnaround, 1e-9)
	assert.InDelta(5.0, result.AvgWaiting, 1e-9)
}

func TestPrioritySched(t *testing.T) {
	assert := assert.New(t)

	result := PrioritySched(procs)
	assert.Equal(map[int]int{1: 5, 2: 8, 3: 22, 4: 14}, completions(result))
	assert.InDelta(10.75, result.AvgTurnaround, 1e-9)
	assert.InDelta(5.25, result.AvgWaiting, 1e-9)
}

func TestRoundRobin(t *testing.T) {
	assert := assert.New(t)

	result, err := RoundRobin(procs, 2)
	assert.NoError(err)
	assert.Equal(map[int]int{1: 14, 2: 11, 3: 22, 4: 20}, completions(result))
	assert.InDelta(15.25, result.AvgTurnaround, 1e-9)
	assert.InDelta(9.75, result.AvgWaiting, 1e-9)
}

func TestRoundRobinQuantumInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := RoundRobin(procs, 0)
	assert.ErrorIs(err, ErrQuantumInvalid)
}

func TestTurnaroundAndWaiting(t *testing.T) {
	assert := assert.New(t)

	result := Fcfs(procs)
	for _, p := range result.Processes {
		assert.Equal(p.Completion-p.Arrival, p.Turnaround)
		assert.Equal(p.Turnaround-p.Burst, p.Waiting)
	}
}

func TestIdleClock(t *testing.T) {
	assert := assert.New(t)

	// Nothing arrives until t=4; every policy must idle forward rather
	// than dispatch early.
	late := []Process{{Pid: 1, Arrival: 4, Burst: 2, Priority: 1}}

	assert.Equal(map[int]int{1: 6}, completions(Fcfs(late)))
	assert.Equal(map[int]int{1: 6}, completions(Sjf(late)))
	assert.Equal(map[int]int{1: 6}, completions(PrioritySched(late)))

	result, err := RoundRobin(late, 2)
	assert.NoError(err)
	assert.Equal(map[int]int{1: 6}, completions(result))
}

func TestCallerNotMutated(t *testing.T) {
	assert := assert.New(t)

	input := slices.Clone(procs)
	Fcfs(input)
	Sjf(input)
	PrioritySched(input)
	_, err := RoundRobin(input, 2)
	assert.NoError(err)

	assert.Equal(procs, input)
}

func TestReport(t *testing.T) {
	assert := assert.New(t)

	result, err := RoundRobin(procs, 2)
	assert.NoError(err)

	var first, second bytes.Buffer
	result.Report(&first)
	result.Report(&second)

	assert.Equal(first.String(), second.String())
	assert.Contains(first.String(), "=== Round Robin Scheduling ===")
	assert.Contains(first.String(), "Average TAT: 15.25")
	assert.Contains(first.String(), "Average WT : 9.75")
}
