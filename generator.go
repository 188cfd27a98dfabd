package allrgb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/allrgb/internal/color"
	"github.com/gogpu/allrgb/internal/field"
	"github.com/gogpu/allrgb/internal/image"
	"github.com/gogpu/allrgb/internal/noise"
	"github.com/gogpu/allrgb/internal/parallel"
	"github.com/gogpu/allrgb/internal/pixel"
	"github.com/gogpu/allrgb/internal/rank"
)

// Generator errors.
var (
	// ErrInvalidSize is returned by New for a grid edge outside [1, MaxSize].
	ErrInvalidSize = errors.New("allrgb: invalid size")

	// ErrInvalidOption is returned by New for other unusable settings.
	ErrInvalidOption = errors.New("allrgb: invalid option")

	// ErrDegenerateField is returned by Run when a generated field is constant
	// (or not finite) and cannot be normalized.
	ErrDegenerateField = field.ErrDegenerate
)

// ColorSpace is the number of distinct 24-bit colours.
const ColorSpace = rank.Space

// Generator runs the allrgb pipeline: three noise fields, normalized,
// converted from HSV to RGB, ranked, and given one colour per rank.
//
// A Generator holds only configuration; every Run allocates its own buffers,
// so one Generator may be run repeatedly or concurrently.
type Generator struct {
	opts options
}

// New validates the options and returns a Generator.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.size < 1 || o.size > MaxSize {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, o.size, MaxSize)
	}
	if o.workers < 0 {
		return nil, fmt.Errorf("%w: workers %d", ErrInvalidOption, o.workers)
	}
	if o.warp != o.warp {
		return nil, fmt.Errorf("%w: warp is NaN", ErrInvalidOption)
	}
	if o.order != OrderLexicographic && o.order != OrderInterleaved {
		return nil, fmt.Errorf("%w: order %v", ErrInvalidOption, o.order)
	}

	return &Generator{opts: o}, nil
}

// Size returns the grid edge length.
func (g *Generator) Size() int { return g.opts.size }

// Run executes the pipeline. Stages run in sequence; the context is checked
// between them. A degenerate field aborts the run with ErrDegenerateField.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	o := g.opts
	n := o.size
	log := Logger()

	if n*n != ColorSpace {
		log.Warn("grid does not match the 24-bit colour space; colours will repeat or be skipped",
			"size", n, "pixels", n*n, "colors", ColorSpace)
	}

	var pool *parallel.WorkerPool
	if o.workers != 1 {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}

	oracle := o.noise
	if oracle == nil {
		s := noise.NewSimplex(o.seed)
		defer func() { _ = s.Close() }()
		log.Debug("simplex noise", "seed", s.Seed(), "octaves", noise.Octaves)
		oracle = s
	}

	res := &Result{size: n, order: o.order}
	st := stageTimer{log: log, res: res}

	// Fields are generated hue, val, sat: the order the phase sets were
	// designed in. Each field is independent, so order does not change output.
	fields := []struct {
		name   string
		phases Phases
		dst    **field.Field
	}{
		{"hue", o.hue, &res.hue},
		{"val", o.val, &res.val},
		{"sat", o.sat, &res.sat},
	}

	for _, s := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := field.New(n)
		if err != nil {
			return nil, err
		}
		st.start("generate " + s.name)
		field.Generate(f, oracle, s.phases, o.warp, pool)
		st.stop()
		*s.dst = f
	}

	for _, s := range fields {
		r, err := field.Normalize(*s.dst)
		if err != nil {
			return nil, fmt.Errorf("allrgb: normalize %s: %w", s.name, err)
		}
		log.Info("range", "field", s.name, "min", r.Min, "max", r.Max)
		res.ranges = append(res.ranges, FieldRange{Name: s.name, Min: r.Min, Max: r.Max})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st.start("synthesize")
	cf, err := color.Synthesize(res.hue, res.sat, res.val, pool)
	st.stop()
	if err != nil {
		return nil, err
	}
	res.color = cf

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st.start("build")
	px := pixel.Build(cf, pool)
	st.stop()
	log.Debug("keyed pixels", "count", len(px))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st.start("sort")
	pixel.Sort(px, o.order, pool)
	st.stop()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := image.NewImageBuf(n, n, image.FormatRGB8)
	if err != nil {
		return nil, err
	}
	st.start("assign")
	err = rank.Assign(px, img, pool)
	st.stop()
	if err != nil {
		return nil, err
	}
	res.image = img

	return res, nil
}

// stageTimer records and logs the duration of each pipeline stage.
type stageTimer struct {
	log   *slog.Logger
	res   *Result
	name  string
	begin time.Time
}

func (s *stageTimer) start(name string) {
	s.name = name
	s.begin = time.Now()
}

func (s *stageTimer) stop() {
	d := time.Since(s.begin)
	s.res.timings = append(s.res.timings, StageTiming{Stage: s.name, Elapsed: d})
	s.log.Debug("stage done", "stage", s.name, "elapsed", d)
}
