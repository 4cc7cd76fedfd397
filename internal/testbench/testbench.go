// Package testbench drives deque workloads: timed throughput runs for the
// bench command and a randomized cross-check of the deque against an
// independently implemented oracle.
package testbench

import (
	"fmt"
	"math/rand"
	"time"

	edeque "github.com/edwingeng/deque/v2"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/i5heu/GoBoundedDeque/pkg/config"
	"github.com/i5heu/GoBoundedDeque/pkg/deque"
)

var logger = loggo.GetLogger("gobdq.testbench")

// Result reports one timed workload run.
type Result struct {
	Ops     int64
	Elapsed time.Duration
}

// RunTimedWorkload builds a deque per the scenario, prefills it, then
// applies the scenario's weighted operation mix for roughly the given
// duration. It returns how many operations completed and the measured time.
func RunTimedWorkload(h deque.Host, sc config.Scenario, duration time.Duration, seed int64) Result {
	rng := rand.New(rand.NewSource(seed))
	d := deque.NewBounded(h, sc.MaxLen)
	for i := 0; i < sc.Prefill; i++ {
		d.Append(int64(i))
	}

	type weighted struct {
		weight int
		op     func(i int64)
	}
	ops := []weighted{
		{sc.Weights.Append, func(i int64) { d.Append(i) }},
		{sc.Weights.AppendLeft, func(i int64) { d.AppendLeft(i) }},
		{sc.Weights.Pop, func(int64) { d.Pop() }},
		{sc.Weights.PopLeft, func(int64) { d.PopLeft() }},
		{sc.Weights.Rotate, func(int64) { d.Rotate(1) }},
		{sc.Weights.Insert, func(i int64) { d.Insert(rng.Intn(2*sc.Prefill+1)-sc.Prefill, i) }},
		{sc.Weights.Index, func(i int64) { d.Index(i % int64(sc.Prefill+1)) }},
		{sc.Weights.Count, func(i int64) { d.Count(i % int64(sc.Prefill+1)) }},
	}
	total := sc.Weights.Total()

	pick := func() func(int64) {
		n := rng.Intn(total)
		for _, w := range ops {
			if n < w.weight {
				return w.op
			}
			n -= w.weight
		}
		return ops[0].op
	}

	logger.Debugf("running scenario %q for %v", sc.Name, duration)
	start := time.Now()
	deadline := start.Add(duration)
	var count int64
	for {
		// Check the clock once per batch; the ops are far cheaper than
		// time.Now.
		for i := 0; i < 1024; i++ {
			pick()(count)
			count++
		}
		if time.Now().After(deadline) {
			break
		}
	}
	elapsed := time.Since(start)
	logger.Debugf("scenario %q: %d ops in %v", sc.Name, count, elapsed)
	return Result{Ops: count, Elapsed: elapsed}
}

// model is the oracle the randomized check compares the deque against. It
// reimplements the bounded-deque end semantics on top of a third-party
// deque, so a bug in our ring storage cannot hide on both sides.
type model struct {
	items  *edeque.Deque[int64]
	maxLen int
}

func newModel(maxLen int) *model {
	return &model{items: edeque.NewDeque[int64](), maxLen: maxLen}
}

func (m *model) atCapacity() bool {
	return m.maxLen >= 0 && m.items.Len() >= m.maxLen
}

func (m *model) append(v int64) {
	if m.atCapacity() {
		if m.maxLen == 0 {
			return
		}
		m.items.TryPopFront()
	}
	m.items.PushBack(v)
}

func (m *model) appendLeft(v int64) {
	if m.atCapacity() {
		if m.maxLen == 0 {
			return
		}
		m.items.TryPopBack()
	}
	m.items.PushFront(v)
}

func (m *model) snapshot() []int64 {
	out := make([]int64, 0, m.items.Len())
	for !m.items.IsEmpty() {
		v, _ := m.items.TryPopFront()
		out = append(out, v)
	}
	for _, v := range out {
		m.items.PushBack(v)
	}
	return out
}

func (m *model) replace(vs []int64) {
	for !m.items.IsEmpty() {
		m.items.TryPopFront()
	}
	for _, v := range vs {
		m.items.PushBack(v)
	}
}

func (m *model) reverse() {
	vs := m.snapshot()
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
	m.replace(vs)
}

func (m *model) rotate(n int) {
	for ; n > 0; n-- {
		if v, ok := m.items.TryPopBack(); ok {
			m.items.PushFront(v)
		}
	}
	for ; n < 0; n++ {
		if v, ok := m.items.TryPopFront(); ok {
			m.items.PushBack(v)
		}
	}
}

// CheckConfig sizes a randomized model check.
type CheckConfig struct {
	Seed   int64
	Ops    int
	MaxLen int // negative means unbounded
}

// CheckAgainstModel applies the same random operation sequence to a deque
// and to the oracle model and fails on the first divergence in length,
// contents, or pop results.
func CheckAgainstModel(h deque.Host, cfg CheckConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	d := deque.NewBounded(h, cfg.MaxLen)
	m := newModel(cfg.MaxLen)

	for i := 0; i < cfg.Ops; i++ {
		v := int64(rng.Intn(1000))
		switch op := rng.Intn(100); {
		case op < 30:
			d.Append(v)
			m.append(v)
		case op < 50:
			d.AppendLeft(v)
			m.appendLeft(v)
		case op < 65:
			got, err := d.Pop()
			want, ok := m.items.TryPopBack()
			if err := checkPop("Pop", i, got, err, want, ok); err != nil {
				return err
			}
		case op < 80:
			got, err := d.PopLeft()
			want, ok := m.items.TryPopFront()
			if err := checkPop("PopLeft", i, got, err, want, ok); err != nil {
				return err
			}
		case op < 90:
			n := rng.Intn(7) - 3
			d.Rotate(n)
			m.rotate(n)
		case op < 97:
			d.Reverse()
			m.reverse()
		default:
			d.Clear()
			m.replace(nil)
		}

		if d.Len() != m.items.Len() {
			return fmt.Errorf("op %d: length diverged: deque=%d model=%d", i, d.Len(), m.items.Len())
		}
		if i%64 == 0 {
			if err := compareContents(i, d, m); err != nil {
				return err
			}
		}
	}
	return compareContents(cfg.Ops, d, m)
}

func checkPop(name string, i int, got deque.Value, err error, want int64, ok bool) error {
	if !ok {
		if !errors.Is(err, deque.ErrEmpty) {
			return fmt.Errorf("op %d: %s on empty deque: got (%v, %v), want ErrEmpty", i, name, got, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("op %d: %s: unexpected error %v", i, name, err)
	}
	if got != deque.Value(want) {
		return fmt.Errorf("op %d: %s: got %v, want %d", i, name, got, want)
	}
	return nil
}

func compareContents(i int, d *deque.Deque, m *model) error {
	want := m.snapshot()
	it := d.Iter()
	for j, w := range want {
		v, ok, err := it.Next()
		if err != nil || !ok {
			return fmt.Errorf("op %d: deque iteration ended early at %d (err=%v)", i, j, err)
		}
		if v != deque.Value(w) {
			return fmt.Errorf("op %d: contents diverged at %d: deque=%v model=%d", i, j, v, w)
		}
	}
	if _, ok, _ := it.Next(); ok {
		return fmt.Errorf("op %d: deque holds more than the model's %d elements", i, len(want))
	}
	return nil
}
