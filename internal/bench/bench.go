// Package bench times Dijkstra and A* on synthetic flight networks and
// summarises the samples.
//
// Each run draws a random (source, target) pair, solves it with both
// algorithms and checks that they agree on the cost. A disagreement is
// reported as ErrMismatch.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/builder"
	"github.com/katalvlaran/skypath/core"
	"github.com/katalvlaran/skypath/dijkstra"
	"github.com/katalvlaran/skypath/internal/logger"
	"github.com/katalvlaran/skypath/internal/metrics"
)

// Backend selects the graph representation searched.
type Backend string

const (
	Adjacency Backend = "adjacency"
	EdgeList  Backend = "edgelist"
	Compact   Backend = "compact"
)

var (
	// ErrUnknownBackend indicates a Backend outside the constants above.
	ErrUnknownBackend = errors.New("bench: unknown backend")

	// ErrBadRuns indicates Runs < 1.
	ErrBadRuns = errors.New("bench: runs must be >= 1")

	// ErrMismatch indicates Dijkstra and A* disagreeing on a cost.
	ErrMismatch = errors.New("bench: dijkstra and astar disagree")
)

// costTolerance absorbs summation-order differences between the two searches.
const costTolerance = 1e-9

// Config describes one benchmark.
type Config struct {
	Airports int
	Fanout   int
	Seed     int64
	Runs     int
	Backend  Backend
}

// Report is the outcome of Run.
type Report struct {
	Backend  Backend
	Vertices int
	Edges    int
	Build    time.Duration
	Runs     int
	Found    int
	Stats    []Stats
}

// Run builds the network described by cfg and times cfg.Runs searches per
// algorithm. rec and log may be nil.
func Run(ctx context.Context, cfg Config, rec *metrics.Recorder, log logrus.FieldLogger) (*Report, error) {
	if cfg.Runs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRuns, cfg.Runs)
	}
	if rec == nil {
		rec = metrics.New()
	}
	if log == nil {
		log = logger.Discard()
	}

	start := time.Now()
	g, search, ids, err := network(cfg)
	if err != nil {
		return nil, err
	}
	rep := &Report{
		Backend:  cfg.Backend,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Build:    time.Since(start),
		Runs:     cfg.Runs,
	}
	rec.SetGraphSize(rep.Vertices, rep.Edges)
	log.WithFields(logrus.Fields{
		"backend":  cfg.Backend,
		"vertices": rep.Vertices,
		"edges":    rep.Edges,
		"build":    rep.Build,
	}).Info("network built")

	dj := newSamples("dijkstra", cfg.Runs)
	as := newSamples("astar", cfg.Runs)
	rng := rand.New(rand.NewSource(cfg.Seed + 1))
	for i := 0; i < cfg.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("bench: run %d: %w", i, err)
		}
		s, t := ids[rng.Intn(len(ids))], ids[rng.Intn(len(ids))]

		t0 := time.Now()
		res, err := dijkstra.Run(search, s, dijkstra.WithTarget(t))
		if err != nil {
			return nil, fmt.Errorf("bench: dijkstra run %d: %w", i, err)
		}
		dj.add(time.Since(t0), res.Settled())
		cost := res.Distance(t)

		t0 = time.Now()
		ar, err := astar.Search(search, s, t, astar.Zero)
		if err != nil {
			return nil, fmt.Errorf("bench: astar run %d: %w", i, err)
		}
		as.add(time.Since(t0), ar.Expanded)

		if !sameCost(cost, ar.Cost) {
			return nil, fmt.Errorf("%w: %d→%d: %g vs %g", ErrMismatch, s, t, cost, ar.Cost)
		}
		found := res.Reachable(t)
		if found {
			rep.Found++
		}
		rec.ObserveSearch(dj.algorithm, dj.last(), res.Settled(), found)
		rec.ObserveSearch(as.algorithm, as.last(), ar.Expanded, found)
		log.WithFields(logrus.Fields{
			"run":     i,
			"source":  s,
			"target":  t,
			"cost":    cost,
			"settled": res.Settled(),
		}).Debug("search")
	}
	rep.Stats = []Stats{dj.summary(), as.summary()}

	return rep, nil
}

// network builds the RandomFanout graph and the view to search.
func network(cfg Config) (core.WeightedGraph[string], core.Graph, []core.VertexID, error) {
	var g core.WeightedGraph[string]
	switch cfg.Backend {
	case Adjacency, Compact:
		g = core.NewAdjacencyList[string](core.WithCapacity(max(cfg.Airports, 0)))
	case EdgeList:
		g = core.NewEdgeList[string](core.WithCapacity(max(cfg.Airports, 0)))
	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	ids, err := builder.BuildGraph(g, []builder.BuilderOption{
		builder.WithSeed(cfg.Seed),
		builder.WithUniformWeight(1, 101),
		builder.WithSymbNumb("AP"),
	}, builder.RandomFanout(cfg.Airports, cfg.Fanout))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bench: %w", err)
	}
	if cfg.Backend != Compact {
		return g, g, ids, nil
	}
	snap, err := core.Freeze(g)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bench: %w", err)
	}

	return g, snap, ids, nil
}

func sameCost(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}

	return math.Abs(a-b) <= costTolerance*math.Max(1, math.Abs(a))
}
