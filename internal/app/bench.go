package app

import (
	"context"
	"io"
	"maps"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/perf/benchfmt"
	"golang.org/x/sync/errgroup"
)

// Benchmark names. Each record is named
// GraphQLParsing/<variant>/<input>-<GOMAXPROCS>.
const (
	BenchGroup          = "GraphQLParsing"
	BenchVariantCached  = "Cached"
	BenchVariantNoCache = "NoCache"
)

// BenchOptions configures Bench. Zero values fall back to the configuration.
type BenchOptions struct {
	// Dir is the directory the configuration is loaded from.
	Dir string
	// Output receives the benchmark records. Defaults to stdout.
	Output io.Writer
	// Iterations is the number of calls per run.
	Iterations int
	// Workers is the number of goroutines sharing one run.
	Workers int
	// Profile enables a runtime profile, one of ProfileModes.
	Profile string
	// ProfilePath is the directory the profile is written to.
	ProfilePath string
}

var errUnknownProfile = zerr.New("unknown profile mode")

// Bench measures GetOrParse against direct parsing for every input and
// writes one Go benchmark record per run.
func (a *App) Bench(ctx context.Context, inputs []Input, opts BenchOptions) error {
	if len(inputs) == 0 {
		return domain.ErrNoInputs
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	session, err := a.Open(opts.Dir)
	if err != nil {
		return err
	}
	cfg := *session.Config()
	if opts.Iterations != 0 {
		cfg.Bench.Iterations = opts.Iterations
	}
	if opts.Workers != 0 {
		cfg.Bench.Workers = opts.Workers
	}
	if cfg.Bench.Iterations <= 0 {
		return zerr.With(domain.ErrInvalidIterations, "iterations", cfg.Bench.Iterations)
	}
	if cfg.Bench.Workers <= 0 {
		return zerr.With(domain.ErrInvalidWorkers, "workers", cfg.Bench.Workers)
	}

	if opts.Profile != "" {
		stop, err := startProfile(opts.Profile, opts.ProfilePath)
		if err != nil {
			return err
		}
		defer stop()
	}

	ctx, span := a.tracer.Start(ctx, "gqlmemo.bench",
		ports.WithAttribute("inputs", len(inputs)),
		ports.WithAttribute("iterations", cfg.Bench.Iterations),
		ports.WithAttribute("workers", cfg.Bench.Workers),
	)
	defer span.End()

	w := benchfmt.NewWriter(out)
	for _, in := range inputs {
		if err := a.benchInput(ctx, w, &cfg, session.Hasher(), in); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

func (a *App) benchInput(
	ctx context.Context,
	w *benchfmt.Writer,
	cfg *domain.Config,
	hasher ports.KeyHasher,
	in Input,
) error {
	// Only valid queries are measured.
	if _, err := a.parser.Parse(in.Query); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse query"), "input", in.Name)
	}

	cache := a.caches.NewCache(cfg.Cache, hasher)
	runs := []struct {
		variant string
		op      func() error
	}{
		{
			variant: BenchVariantCached,
			op: func() error {
				_, err := cache.GetOrParse(in.Query)
				return err
			},
		},
		{
			variant: BenchVariantNoCache,
			op: func() error {
				_, err := a.parser.Parse(in.Query)
				return err
			},
		},
	}

	for _, run := range runs {
		m, err := measure(ctx, cfg.Bench.Iterations, cfg.Bench.Workers, run.op)
		if err != nil {
			return zerr.With(err, "input", in.Name)
		}

		res := m.result(benchName(run.variant, in.Name), fileConfig(
			"goos", runtime.GOOS,
			"goarch", runtime.GOARCH,
			"hasher", hasher.Name(),
			"capacity", strconv.Itoa(cfg.Cache.Capacity),
			"workers", strconv.Itoa(cfg.Bench.Workers),
		))
		if err := w.Write(res); err != nil {
			return zerr.Wrap(err, "failed to write benchmark result")
		}

		a.logger.Debug("benchmark run",
			"input", in.Name,
			"variant", run.variant,
			"ns_per_op", m.nsPerOp(),
		)
	}
	return nil
}

func benchName(variant, input string) benchfmt.Name {
	input = strings.Join(strings.Fields(input), "_")
	return benchfmt.Name(BenchGroup + "/" + variant + "/" + input + "-" + strconv.Itoa(runtime.GOMAXPROCS(0)))
}

// measurement is the raw outcome of one run.
type measurement struct {
	iters   int
	elapsed time.Duration
	bytes   uint64
	allocs  uint64
}

func (m measurement) nsPerOp() float64 {
	return float64(m.elapsed.Nanoseconds()) / float64(m.iters)
}

// fileConfig builds file-level config from key/value pairs. Writers print
// file config as a header block and omit internal config, which is what
// Result.SetConfig would create.
func fileConfig(kv ...string) []benchfmt.Config {
	cfg := make([]benchfmt.Config, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		cfg = append(cfg, benchfmt.Config{Key: kv[i], Value: []byte(kv[i+1]), File: true})
	}
	return cfg
}

func (m measurement) result(name benchfmt.Name, config []benchfmt.Config) *benchfmt.Result {
	return &benchfmt.Result{
		Config: config,
		Name:   name,
		Iters:  m.iters,
		Values: []benchfmt.Value{
			{Value: m.nsPerOp(), Unit: "ns/op"},
			{Value: float64(m.bytes) / float64(m.iters), Unit: "B/op"},
			{Value: float64(m.allocs) / float64(m.iters), Unit: "allocs/op"},
		},
	}
}

// measure calls op iterations times, split across workers goroutines, and
// records wall time and heap allocation.
func measure(ctx context.Context, iterations, workers int, op func() error) (measurement, error) {
	if workers > iterations {
		workers = iterations
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		n := iterations / workers
		if i < iterations%workers {
			n++
		}
		g.Go(func() error {
			for range n {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := op(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err := g.Wait()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	if err != nil {
		return measurement{}, err
	}

	return measurement{
		iters:   iterations,
		elapsed: elapsed,
		bytes:   after.TotalAlloc - before.TotalAlloc,
		allocs:  after.Mallocs - before.Mallocs,
	}, nil
}

var profileModes = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// ProfileModes returns the accepted profile mode names in sorted order.
func ProfileModes() []string {
	return slices.Sorted(maps.Keys(profileModes))
}

func startProfile(mode, path string) (func(), error) {
	opt, ok := profileModes[mode]
	if !ok {
		return nil, zerr.With(
			zerr.With(errUnknownProfile, "profile", mode),
			"available", strings.Join(ProfileModes(), ", "),
		)
	}

	opts := []func(*profile.Profile){opt, profile.Quiet, profile.NoShutdownHook}
	if path != "" {
		opts = append(opts, profile.ProfilePath(path))
	}
	return profile.Start(opts...).Stop, nil
}
