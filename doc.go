// Package tablemark is a microbenchmark harness comparing two representations
// of the same scripted-math computation inside an embedded Lua interpreter:
// native-bound userdata geometry values versus plain Lua tables.
//
// # Overview
//
// The harness ships a fixed catalog of workload pairs (see [Workloads]). Each
// pair consists of a usertype variant, which constructs and combines bound
// geometry values ([Vec2], [Vec3], [RectF], [Point]), and a table variant,
// which performs identical per-field arithmetic on anonymous tables. Both
// variants of a pair execute the same operations in the same order, so their
// sums are equal and timing differences reflect representation cost only.
//
// # Quick Start
//
//	runner := tablemark.NewRunner(tablemark.DefaultConfig())
//	results, err := runner.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tablemark.NewReporter(os.Stdout).ReportText(results)
//
// # Measurement
//
// Each case runs one workload at one input size inside a fresh interpreter
// instance. The runner warms the state up, then repeats timed invocations
// until a minimum elapsed time or a repetition ceiling is reached, and derives
// throughput as iterations completed per second. Every returned sum is folded
// into the result's checksum so the calls stay observably used.
//
// Per-iteration value churn is the point of the exercise: workload values are
// built fresh every loop iteration and become garbage at its end, so the
// interpreter's collector is part of what gets measured. The host never pools
// or reuses workload values.
package tablemark
