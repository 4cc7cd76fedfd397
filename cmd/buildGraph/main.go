package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"os"
	"sort"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BenchmarkResult holds one benchmark result from the bench command.
type BenchmarkResult struct {
	Scenario      string  `json:"scenario"`
	MaxLen        int     `json:"maxlen"`
	Prefill       int     `json:"prefill"`
	NumOps        int64   `json:"num_ops"`
	TestDuration  string  `json:"test_duration"`
	ActualElapsed string  `json:"actual_elapsed"`
	Throughput    float64 `json:"throughput_ops_sec"`
	Timestamp     int64   `json:"timestamp"`
	GoVersion     string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete bench session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// scenarioStats holds "5%-avg-min", median, and "5%-avg-max" per scenario.
type scenarioStats struct {
	position float64 // category index on the X axis
	name     string
	min      float64 // "average of bottom 5%"
	median   float64
	max      float64 // "average of top 5%"
}

// statsPoints implements XYer and YErrorer for scenarioStats, so we can plot
// lines + error bars.
type statsPoints []scenarioStats

func (s statsPoints) Len() int                { return len(s) }
func (s statsPoints) XY(i int) (x, y float64) { return s[i].position, s[i].median }
func (s statsPoints) YError(i int) (low, high float64) {
	low = s[i].median - s[i].min
	high = s[i].max - s[i].median
	return low, high
}

// categoryTicks implements a categorical X-axis: 0,1,2,... => scenario names.
type categoryTicks struct {
	positions []float64
	labels    []string
}

func (ct categoryTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, pos := range ct.positions {
		if pos >= min && pos <= max {
			ticks = append(ticks, plot.Tick{Value: pos, Label: ct.labels[i]})
		}
	}
	return ticks
}

func main() {
	jsonFile := flag.String("jsonfile", "test-results.json", "Path to JSON file containing bench sessions")
	output := flag.String("out", "benchmark_graph.png", "Output graph image filename")
	flag.Parse()

	data, err := os.ReadFile(*jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON file: %v\n", err)
		os.Exit(1)
	}

	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling JSON: %v\n", err)
		os.Exit(1)
	}

	// Group ns/op samples by scenario across all sessions.
	samples := make(map[string][]float64)
	for _, session := range sessions {
		for _, b := range session.Benchmarks {
			dur, err := time.ParseDuration(b.ActualElapsed)
			if err != nil || b.NumOps == 0 {
				continue
			}
			nsPerOp := float64(dur.Nanoseconds()) / float64(b.NumOps)
			samples[b.Scenario] = append(samples[b.Scenario], nsPerOp)
		}
	}
	if len(samples) == 0 {
		fmt.Fprintln(os.Stderr, "No usable benchmark data found.")
		os.Exit(1)
	}

	var names []string
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	var stats []scenarioStats
	var positions []float64
	var labels []string
	for i, name := range names {
		vals := samples[name]
		sort.Float64s(vals)
		stats = append(stats, scenarioStats{
			position: float64(i),
			name:     name,
			min:      averageOfRange(vals, 0.0, 0.05),
			median:   median(vals),
			max:      averageOfRange(vals, 0.95, 1.0),
		})
		positions = append(positions, float64(i))
		labels = append(labels, name)
	}

	p := plot.New()
	p.Title.Text = "Deque workloads (5%-avg-min / Median / 5%-avg-max) per scenario"
	p.X.Label.Text = "Scenario"
	p.Y.Label.Text = "Time per Op (ns)"

	// Dark theme.
	p.BackgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	p.Title.TextStyle.Color = white
	p.X.Label.TextStyle.Color = white
	p.Y.Label.TextStyle.Color = white
	p.X.Color = white
	p.Y.Color = white
	p.X.Tick.Label.Color = white
	p.Y.Tick.Label.Color = white

	p.X.Tick.Marker = categoryTicks{positions: positions, labels: labels}
	p.Y.Tick.Marker = plot.TickerFunc(func(min, max float64) []plot.Tick {
		if min < 0 {
			min = 0
		}
		const nTicks = 12.0
		step := (max - min) / nTicks
		if step <= 0 {
			return nil
		}
		var ticks []plot.Tick
		for v := min; v <= max; v += step {
			ticks = append(ticks, plot.Tick{Value: v, Label: formatNs(v)})
		}
		return ticks
	})
	p.X.Min, p.X.Max = -0.5, float64(len(names))-0.5

	p.Add(plotter.NewGrid())

	sp := statsPoints(stats)
	points, err := plotter.NewScatter(sp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scatter: %v\n", err)
		os.Exit(1)
	}
	points.GlyphStyle.Radius = vg.Points(5)
	points.Shape = draw.CircleGlyph{}
	points.Color = white

	yErrBars, err := plotter.NewYErrorBars(sp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating error bars: %v\n", err)
		os.Exit(1)
	}
	yErrBars.Color = white

	p.Add(points, yErrBars)

	if err := p.Save(12*vg.Inch, 9*vg.Inch, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Graph saved to %s\n", *output)
}

// averageOfRange returns the average of sortedVals in [startFrac, endFrac] of its length.
// E.g. averageOfRange(vals, 0, 0.05) is the average of the bottom 5%.
func averageOfRange(sortedVals []float64, startFrac, endFrac float64) float64 {
	n := len(sortedVals)
	if n == 0 {
		return 0
	}
	startIndex := int(float64(n) * startFrac)
	endIndex := int(float64(n) * endFrac)
	if startIndex < 0 {
		startIndex = 0
	}
	if endIndex > n {
		endIndex = n
	}
	if startIndex >= endIndex {
		// fallback to median if 5% slice is too small
		return median(sortedVals)
	}
	sum := 0.0
	for i := startIndex; i < endIndex; i++ {
		sum += sortedVals[i]
	}
	return sum / float64(endIndex-startIndex)
}

func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// formatNs nicely formats a nanoseconds value in ns, µs, ms, or s.
func formatNs(ns float64) string {
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%.0fns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.1fµs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.1fms", ns/1e6)
	default:
		return fmt.Sprintf("%.2fs", ns/1e9)
	}
}
