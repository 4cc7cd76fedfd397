package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/juju/loggo/v2"
	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/i5heu/GoBoundedDeque/internal/testbench"
	"github.com/i5heu/GoBoundedDeque/pkg/config"
	"github.com/i5heu/GoBoundedDeque/pkg/stdhost"
)

var logger = loggo.GetLogger("gobdq.bench")

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Scenario      string  `json:"scenario"`
	MaxLen        int     `json:"maxlen"` // -1 for unbounded
	Prefill       int     `json:"prefill"`
	NumOps        int64   `json:"num_ops"`
	TestDuration  string  `json:"test_duration"`  // e.g. "5s"
	ActualElapsed string  `json:"actual_elapsed"` // measured time
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

// outputMarkdownTable loads the JSON file and outputs a Markdown table.
func outputMarkdownTable(jsonFile string) {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON file %q: %v\n", jsonFile, err)
		os.Exit(1)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling JSON: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "No sessions found in JSON.")
		os.Exit(1)
	}
	// Use the last session for the table.
	lastSession := sessions[len(sessions)-1]

	type tableRow struct {
		scenario   string
		maxLen     int
		prefill    int
		throughput float64
	}
	var rows []tableRow
	for _, bench := range lastSession.Benchmarks {
		rows = append(rows, tableRow{
			scenario:   bench.Scenario,
			maxLen:     bench.MaxLen,
			prefill:    bench.Prefill,
			throughput: bench.Throughput,
		})
	}
	// Sort rows by throughput descending.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].throughput > rows[j].throughput
	})
	fmt.Println("## Last Session Benchmark Summary")
	fmt.Println()
	fmt.Println("| Scenario        | MaxLen   | Prefill  | Throughput (ops/sec) |")
	fmt.Println("|-----------------|----------|----------|----------------------|")
	for _, r := range rows {
		maxLen := "none"
		if r.maxLen >= 0 {
			maxLen = fmt.Sprintf("%d", r.maxLen)
		}
		fmt.Printf("| %-15s | %-8s | %8d | %20.0f |\n",
			r.scenario, maxLen, r.prefill, r.throughput)
	}
}

func main() {
	// Flags.
	testIterations := flag.Int("iter", 5, "Number of iterations per scenario")
	configPath := flag.String("config", "", "Path to a YAML scenario file; built-in scenarios if empty")
	durationFlag := flag.Duration("duration", 5*time.Second, "Duration of each iteration")
	seedFlag := flag.Int64("seed", 1, "Base seed for the workload generators")
	jsonExport := flag.Bool("json", false, "Export results as JSON to test-results.json")
	markdownTable := flag.Bool("markdown-table", false, "Output markdown table from test-results.json and exit")
	jsonFileForMarkdown := flag.String("jsonfile", "test-results.json", "Path to JSON file for markdown table")
	progressFlag := flag.Bool("progress", false, "Display a progress bar with ETA")
	logSpec := flag.String("logging", "<root>=INFO", "loggo logging specification")
	flag.Parse()

	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		fmt.Fprintln(os.Stderr, "Error configuring logging:", err)
		os.Exit(1)
	}

	if *markdownTable {
		outputMarkdownTable(*jsonFileForMarkdown)
		return
	}

	scenarios := config.Default()
	if *configPath != "" {
		var err error
		scenarios, err = config.Load(*configPath)
		if err != nil {
			logger.Errorf("loading scenarios: %v", err)
			os.Exit(1)
		}
	}

	host := stdhost.Host{}
	totalTests := len(scenarios.Scenarios) * (*testIterations)
	var bar *progressbar.ProgressBar
	if *progressFlag {
		bar = progressbar.NewOptions(totalTests,
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
		)
	}

	sysInfo := gatherSystemInfo()
	logger.Infof("running %d scenarios x %d iterations of %v each", len(scenarios.Scenarios), *testIterations, *durationFlag)

	var results []BenchmarkResult
	for _, sc := range scenarios.Scenarios {
		fmt.Printf("\n[Scenario: %s, maxlen=%d, prefill=%d]\n", sc.Name, sc.MaxLen, sc.Prefill)
		for iteration := 1; iteration <= *testIterations; iteration++ {
			runtime.GC()
			res := testbench.RunTimedWorkload(host, sc, *durationFlag, *seedFlag+int64(iteration))
			throughput := float64(res.Ops) / res.Elapsed.Seconds()

			fmt.Printf("  iteration %d/%d => ops=%d, throughput=%.0f ops/s, took=%v\n",
				iteration, *testIterations, res.Ops, throughput, res.Elapsed)
			if bar != nil {
				bar.Add(1)
			}

			results = append(results, BenchmarkResult{
				Scenario:      sc.Name,
				MaxLen:        sc.MaxLen,
				Prefill:       sc.Prefill,
				NumOps:        res.Ops,
				TestDuration:  durationFlag.String(),
				ActualElapsed: res.Elapsed.String(),
				Throughput:    throughput,
				Timestamp:     time.Now().Unix(),
				GoVersion:     runtime.Version(),
			})
		}
	}
	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}

	session := FullReport{
		SessionTime: time.Now().Format(time.RFC3339),
		SystemInfo:  sysInfo,
		Benchmarks:  results,
	}

	// If JSON export is requested, append the new session to test-results.json.
	if *jsonExport {
		const filename = "test-results.json"
		var previous []FullReport
		if _, err := os.Stat(filename); err == nil {
			data, err := os.ReadFile(filename)
			if err == nil && len(data) > 0 {
				json.Unmarshal(data, &previous)
			}
		}
		updated := append(previous, session)
		data, err := json.MarshalIndent(updated, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error marshalling JSON:", err)
			os.Exit(1)
		}
		if err = os.WriteFile(filename, data, 0644); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing JSON file:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote results to %s\n", filename)
	}
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	numCPU := runtime.NumCPU()
	goArch := runtime.GOARCH

	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	}

	return SystemInfo{
		NumCPU:      numCPU,
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      goArch,
		TotalMemory: totalMemory,
	}
}
