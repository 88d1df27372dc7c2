package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/baxromumarov/shiftset"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

// workload describes one synthetic run: a starting population plus a mix of
// operations drawn from a bounded key universe. Percentages must sum to 100.
type workload struct {
	Name      string `yaml:"name"`
	Seed      int64  `yaml:"seed"`
	Universe  int64  `yaml:"universe"`
	Prefill   int    `yaml:"prefill"`
	Ops       int    `yaml:"ops"`
	InsertPct int    `yaml:"insert_pct"`
	ErasePct  int    `yaml:"erase_pct"`
	FindPct   int    `yaml:"find_pct"`
	ShiftPct  int    `yaml:"shift_pct"`
	MaxDelta  int64  `yaml:"max_delta"`
}

func (w workload) validate() error {
	if w.Name == "" {
		return fmt.Errorf("workload needs a name")
	}
	if w.Universe <= 0 {
		return fmt.Errorf("workload %s: universe must be positive", w.Name)
	}
	if w.Ops <= 0 {
		return fmt.Errorf("workload %s: ops must be positive", w.Name)
	}
	if w.Prefill < 0 {
		return fmt.Errorf("workload %s: prefill cannot be negative", w.Name)
	}
	if w.MaxDelta < 0 {
		return fmt.Errorf("workload %s: max_delta cannot be negative", w.Name)
	}
	if sum := w.InsertPct + w.ErasePct + w.FindPct + w.ShiftPct; sum != 100 {
		return fmt.Errorf("workload %s: operation mix sums to %d, want 100", w.Name, sum)
	}
	return nil
}

// loadWorkloads reads and validates workload definitions from a YAML file.
func loadWorkloads(path string) ([]workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file struct {
		Workloads []workload `yaml:"workloads"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Workloads) == 0 {
		return nil, fmt.Errorf("%s defines no workloads", path)
	}
	for _, w := range file.Workloads {
		if err := w.validate(); err != nil {
			return nil, err
		}
	}
	return file.Workloads, nil
}

func defaultWorkloads() []workload {
	return []workload{
		{Name: "churn", Seed: 1, Universe: 1 << 16, Prefill: 1 << 14, Ops: 1 << 20, InsertPct: 40, ErasePct: 40, FindPct: 15, ShiftPct: 5, MaxDelta: 64},
		{Name: "lookup-heavy", Seed: 2, Universe: 1 << 16, Prefill: 1 << 14, Ops: 1 << 20, InsertPct: 10, ErasePct: 5, FindPct: 80, ShiftPct: 5, MaxDelta: 64},
		{Name: "shift-heavy", Seed: 3, Universe: 1 << 16, Prefill: 1 << 14, Ops: 1 << 18, InsertPct: 20, ErasePct: 10, FindPct: 30, ShiftPct: 40, MaxDelta: 16},
	}
}

// runWorkload executes w against a fresh set and writes a one-line
// throughput summary to out.
func runWorkload(w workload, out io.Writer, showProgress bool) error {
	if err := w.validate(); err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(w.Seed))
	set := shiftset.New[int64]()
	for i := 0; i < w.Prefill; i++ {
		set.Insert(rng.Int63n(w.Universe))
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(w.Ops,
			progressbar.OptionSetDescription(w.Name),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(out)
			}),
		)
	}

	start := time.Now()
	for i := 0; i < w.Ops; i++ {
		roll := rng.Intn(100)
		v := rng.Int63n(w.Universe)
		switch {
		case roll < w.InsertPct:
			set.Insert(v)
		case roll < w.InsertPct+w.ErasePct:
			set.Erase(v)
		case roll < w.InsertPct+w.ErasePct+w.FindPct:
			set.Find(v)
		default:
			set.Shift(v, rng.Int63n(w.MaxDelta+1))
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	elapsed := time.Since(start)
	if bar != nil {
		bar.Finish()
	}

	size := len(set.SortedValues())
	fmt.Fprintf(out, "%-14s %10d ops in %10s %14.0f ops/s  final size %d\n",
		w.Name, w.Ops, elapsed.Round(time.Millisecond), float64(w.Ops)/elapsed.Seconds(), size)
	return nil
}
