package driver

import (
	"context"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"cssvalue/internal/ast"
	"cssvalue/internal/lexer"
	"cssvalue/internal/parser"
	"cssvalue/internal/token"
	"cssvalue/internal/trace"
)

// Options configure ParseAll. The zero value parses on GOMAXPROCS workers
// without cache or progress.
type Options struct {
	Jobs int
	// Tokens also keeps the token stream of every input.
	Tokens   bool
	Cache    *DiskCache
	Progress ProgressSink
}

// Result is the outcome for one input. Err is set only when the batch was
// cancelled before the input ran.
type Result struct {
	Input  Input
	Tokens []token.Token
	Nodes  []ast.Node
	Cached bool
	Err    error
}

// ParseAll tokenizes and parses inputs concurrently. Results keep input
// order. The tracer is taken from ctx.
func ParseAll(ctx context.Context, inputs []Input, opts Options) ([]Result, error) {
	results := make([]Result, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	tr := trace.FromContext(ctx)
	batch := trace.Begin(tr, trace.ScopeDriver, "parse-all", trace.CurrentSpan(ctx).SpanID)
	defer func() {
		batch.WithExtra("inputs", strconv.Itoa(len(inputs))).End("")
	}()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for i, in := range inputs {
		results[i] = Result{Input: in}
		emit(ctx, opts.Progress, Event{Index: i, Name: in.Name, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i := range inputs {
		g.Go(func() error {
			// index i is owned by this goroutine, no lock needed
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				emit(ctx, opts.Progress, Event{Index: i, Name: inputs[i].Name, Status: StatusError, Err: err})
				return err
			}
			emit(gctx, opts.Progress, Event{Index: i, Name: inputs[i].Name, Status: StatusParsing})
			parseOne(tr, batch.ID(), &results[i], opts)
			emit(gctx, opts.Progress, Event{Index: i, Name: inputs[i].Name, Status: StatusDone, Cached: results[i].Cached})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		trace.Failure(tr, trace.ScopeDriver, "parse-all", err, batch.ID())
		return results, err
	}
	return results, nil
}

func parseOne(tr trace.Tracer, parent uint64, res *Result, opts Options) {
	value := res.Input.Value
	span := trace.Begin(tr, trace.ScopeInput, "input", parent)
	defer func() {
		span.WithExtra("name", res.Input.Name).
			WithExtra("cached", strconv.FormatBool(res.Cached)).
			End("")
	}()

	if opts.Tokens {
		res.Tokens = lexer.Tokenize(value)
	}

	var key Key
	if opts.Cache != nil {
		key = KeyFor(value)
		nodes, ok, err := opts.Cache.Get(key)
		if err != nil {
			trace.Failure(tr, trace.ScopeInput, "cache-get", err, span.ID())
		}
		if ok {
			trace.Point(tr, trace.ScopeInput, "cache-hit", res.Input.Name, span.ID())
			res.Nodes, res.Cached = nodes, true
			return
		}
	}

	res.Nodes = parser.ParseWith(value, parser.Options{Tracer: tr, Parent: span.ID()})

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, res.Nodes); err != nil {
			trace.Failure(tr, trace.ScopeInput, "cache-put", err, span.ID())
		}
	}
}

func emit(ctx context.Context, sink ProgressSink, ev Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(ctx, ev)
}
