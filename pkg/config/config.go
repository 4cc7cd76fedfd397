// Package config holds the workload scenario configuration for the bench
// tooling, so other programs can import the schema without pulling in the
// whole testbench.
package config

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Weights is the relative operation mix of a workload. Weights are
// proportions, not percentages; any non-negative integers work.
type Weights struct {
	Append     int `yaml:"append"`
	AppendLeft int `yaml:"appendleft"`
	Pop        int `yaml:"pop"`
	PopLeft    int `yaml:"popleft"`
	Rotate     int `yaml:"rotate"`
	Insert     int `yaml:"insert"`
	Index      int `yaml:"index"`
	Count      int `yaml:"count"`
}

// Total returns the sum of all weights.
func (w Weights) Total() int {
	return w.Append + w.AppendLeft + w.Pop + w.PopLeft + w.Rotate + w.Insert + w.Index + w.Count
}

// Scenario describes one benchmark workload: the deque shape it runs
// against and the operation mix it applies.
type Scenario struct {
	Name    string  `yaml:"name"`
	MaxLen  int     `yaml:"maxlen"`  // negative means unbounded
	Prefill int     `yaml:"prefill"` // elements pushed before timing starts
	Weights Weights `yaml:"weights"`
}

// File is the root of a scenario configuration file.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and validates a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Annotatef(err, "parsing %q", path)
	}
	if err := f.Validate(); err != nil {
		return nil, errors.Annotatef(err, "validating %q", path)
	}
	return &f, nil
}

// Validate checks every scenario for a usable shape.
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return errors.NotValidf("empty scenario list")
	}
	seen := make(map[string]bool)
	for _, sc := range f.Scenarios {
		if sc.Name == "" {
			return errors.NotValidf("scenario without a name")
		}
		if seen[sc.Name] {
			return errors.NotValidf("duplicate scenario %q", sc.Name)
		}
		seen[sc.Name] = true
		if sc.Prefill < 0 {
			return errors.NotValidf("scenario %q: negative prefill", sc.Name)
		}
		if sc.Weights.Total() <= 0 {
			return errors.NotValidf("scenario %q: no positive weights", sc.Name)
		}
	}
	return nil
}

// Default returns the built-in scenarios used when no config file is given.
func Default() *File {
	return &File{Scenarios: []Scenario{
		{
			Name:    "fifo",
			MaxLen:  -1,
			Prefill: 0,
			Weights: Weights{Append: 1, PopLeft: 1},
		},
		{
			Name:    "sliding-window",
			MaxLen:  1024,
			Prefill: 1024,
			Weights: Weights{Append: 3, AppendLeft: 1},
		},
		{
			Name:    "rotate-heavy",
			MaxLen:  -1,
			Prefill: 4096,
			Weights: Weights{Append: 1, Pop: 1, Rotate: 4},
		},
		{
			Name:    "search-heavy",
			MaxLen:  -1,
			Prefill: 1024,
			Weights: Weights{Append: 1, Pop: 1, Index: 2, Count: 2},
		},
		{
			Name:    "mixed",
			MaxLen:  4096,
			Prefill: 2048,
			Weights: Weights{Append: 4, AppendLeft: 2, Pop: 2, PopLeft: 2, Rotate: 1, Insert: 1, Index: 1, Count: 1},
		},
	}}
}
