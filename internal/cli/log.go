package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/pathset"
)

// newLogger creates a logger prefixed "mazepath" with short timestamps.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "mazepath",
	})
}

// progress times one solver phase and reports its statistics at debug level.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call searchDone or tilesDone when the phase completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Microsecond)
}

// searchDone logs how much of the state space a solve touched.
// Example output (5×5 maze): "search finished finalized=<n> states=100 tracked=true reachable=true cost=3004 ..."
func (p *progress) searchDone(res *dijkstra.Result) {
	g := res.Grid()
	cost, ok := res.Cost()
	p.logger.Debug("search finished",
		"finalized", res.Finalized(),
		"states", g.NumStates(),
		"tracked", res.Tracked(),
		"reachable", ok,
		"cost", cost,
		"elapsed", p.elapsed(),
	)
}

// tilesDone logs the size of a reconstructed path set against the grid area.
func (p *progress) tilesDone(res *dijkstra.Result, ts *pathset.TileSet) {
	p.logger.Debug("path set reconstructed",
		"tiles", ts.Len(),
		"goal_states", len(res.GoalStates()),
		"cells", res.Grid().NumPositions(),
		"elapsed", p.elapsed(),
	)
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
