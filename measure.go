package tablemark

import (
	"fmt"
	"regexp"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Config controls case selection and calibration.
type Config struct {
	// Sizes lists the iteration counts to measure each workload at.
	Sizes []int

	// Warmup is the number of untimed invocations run before measuring.
	Warmup int

	// BenchTime is the minimum elapsed time a case must accumulate before
	// its measurement is considered stable.
	BenchTime time.Duration

	// MaxReps caps the number of timed repetitions per case, so that very
	// slow cases still terminate within a bounded repetition budget.
	MaxReps int

	// Filter is an optional Go regexp matched against case names. Empty
	// matches everything.
	Filter string
}

// DefaultConfig returns the standard harness configuration: the three
// documented input sizes, a short warmup, and a one-second time budget.
func DefaultConfig() Config {
	return Config{
		Sizes:     []int{100, 1000, 10000},
		Warmup:    2,
		BenchTime: time.Second,
		MaxReps:   1_000_000,
	}
}

// Case pairs a workload with an input size.
type Case struct {
	Workload Workload
	N        int
}

// Name returns the display name for the case: "workload/n=size".
func (c Case) Name() string {
	return fmt.Sprintf("%s/n=%d", c.Workload.Name, c.N)
}

// Result holds the outcome of measuring a single case.
type Result struct {
	Case        string        `json:"case"`
	N           int           `json:"n"`
	Reps        int           `json:"reps"`
	TotalTime   time.Duration `json:"total_ns"`
	AvgTime     time.Duration `json:"avg_ns"`
	MinTime     time.Duration `json:"min_ns"`
	MaxTime     time.Duration `json:"max_ns"`
	ItemsPerSec float64       `json:"items_per_sec"`

	// Checksum accumulates the sums returned by every timed invocation.
	// Consuming the return value here keeps the call observably used; the
	// driver does not validate it.
	Checksum float64 `json:"checksum"`
}

// Runner measures workload cases sequentially within one process.
type Runner struct {
	cfg       Config
	workloads []Workload
}

// NewRunner creates a runner over the fixed workload catalog.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, workloads: Workloads()}
}

// Cases returns the selected cases in run order, applying the name filter.
func (r *Runner) Cases() ([]Case, error) {
	var re *regexp.Regexp
	if r.cfg.Filter != "" {
		var err error
		re, err = regexp.Compile(r.cfg.Filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter: %w", err)
		}
	}
	var cases []Case
	for _, w := range r.workloads {
		for _, n := range r.cfg.Sizes {
			c := Case{Workload: w, N: n}
			if re == nil || re.MatchString(c.Name()) {
				cases = append(cases, c)
			}
		}
	}
	return cases, nil
}

// Run measures every selected case and returns one result per case.
//
// A script load failure or missing entry point aborts the run with an error:
// a malformed workload invalidates the comparison, so it is never skipped.
func (r *Runner) Run() ([]Result, error) {
	cases, err := r.Cases()
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		res, err := r.runCase(c)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// runCase measures one case with a fresh interpreter instance. The state is
// discarded at the end of the case; its collector owns every value the
// workload allocates, and the host never pools or reuses them.
func (r *Runner) runCase(c Case) (Result, error) {
	L := lua.NewState()
	defer L.Close()

	if _, err := c.Workload.Load(L); err != nil {
		return Result{}, err
	}

	for i := 0; i < r.cfg.Warmup; i++ {
		if _, err := c.Workload.Invoke(L, c.N); err != nil {
			return Result{}, err
		}
	}

	// Always run at least one timed repetition, then continue until the
	// time budget is met or the repetition ceiling stops the case.
	res := Result{Case: c.Name(), N: c.N}
	for res.Reps == 0 || (res.TotalTime < r.cfg.BenchTime && res.Reps < r.cfg.MaxReps) {
		start := time.Now()
		sum, err := c.Workload.Invoke(L, c.N)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, err
		}
		res.Checksum += sum
		res.TotalTime += elapsed
		if res.Reps == 0 || elapsed < res.MinTime {
			res.MinTime = elapsed
		}
		if elapsed > res.MaxTime {
			res.MaxTime = elapsed
		}
		res.Reps++
	}

	res.AvgTime = res.TotalTime / time.Duration(res.Reps)
	res.ItemsPerSec = float64(c.N) * float64(res.Reps) / res.TotalTime.Seconds()
	return res, nil
}
