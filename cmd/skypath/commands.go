package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/skypath/airport"
	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/bfs"
	"github.com/katalvlaran/skypath/core"
	"github.com/katalvlaran/skypath/dijkstra"
	"github.com/katalvlaran/skypath/internal/bench"
	"github.com/katalvlaran/skypath/internal/metrics"
)

var (
	errNoNetwork = errors.New("no network file (use --network or SKYPATH_NETWORK)")
	errNoRoute   = errors.New("no route")
)

type networkFlag struct {
	Network string `help:"YAML flight network" default:"${network}"`
}

// load reads the network file.
func (n networkFlag) load(a *app) (*airport.Network, error) {
	if n.Network == "" {
		return nil, errNoNetwork
	}
	f, err := os.Open(n.Network)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	net, err := airport.Load(f, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.Network, err)
	}
	a.log.WithFields(logrus.Fields{
		"file":     n.Network,
		"airports": net.Len(),
		"flights":  net.Graph().EdgeCount(),
	}).Debug("network loaded")

	return net, nil
}

type routeCmd struct {
	networkFlag
	Algorithm string `help:"Search algorithm" enum:"dijkstra,astar" default:"${algorithm}"`
	From      string `arg:"" help:"Departure airport code"`
	To        string `arg:"" help:"Arrival airport code"`
}

func (c *routeCmd) Run(a *app) error {
	net, err := c.load(a)
	if err != nil {
		return err
	}
	from, err := net.MustLookup(c.From)
	if err != nil {
		return err
	}
	to, err := net.MustLookup(c.To)
	if err != nil {
		return err
	}

	var (
		path []core.VertexID
		cost float64
		work int
	)
	switch c.Algorithm {
	case "astar":
		res, err := astar.Search(net.Graph(), from, to, airport.Heuristic(net, to))
		if err != nil {
			return err
		}
		path, cost, work = res.Path, res.Cost, res.Expanded
	default:
		res, err := dijkstra.Run(net.Graph(), from, dijkstra.WithTarget(to))
		if err != nil {
			return err
		}
		path, cost, work = res.PathTo(to), res.Distance(to), res.Settled()
	}
	a.log.WithFields(logrus.Fields{"algorithm": c.Algorithm, "visited": work}).Debug("search done")
	if len(path) == 0 {
		return fmt.Errorf("%w: %s → %s", errNoRoute, c.From, c.To)
	}

	codes, err := net.Codes(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, strings.Join(codes, " → "))
	fmt.Fprintf(a.out, "%.1f km, %d legs\n", cost, len(path)-1)

	return nil
}

type distancesCmd struct {
	networkFlag
	From string `arg:"" help:"Departure airport code"`
}

func (c *distancesCmd) Run(a *app) error {
	net, err := c.load(a)
	if err != nil {
		return err
	}
	from, err := net.MustLookup(c.From)
	if err != nil {
		return err
	}
	res, err := dijkstra.Run(net.Graph(), from)
	if err != nil {
		return err
	}

	type row struct {
		code string
		km   float64
	}
	rows := make([]row, 0, net.Len())
	for _, ap := range net.Airports() {
		v, _ := net.Lookup(ap.Code)
		rows = append(rows, row{ap.Code, res.Distance(v)})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].km < rows[j].km })

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		if math.IsInf(r.km, 1) {
			fmt.Fprintf(tw, "%s\tunreachable\n", r.code)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.1f\n", r.code, r.km)
	}

	return tw.Flush()
}

type hopsCmd struct {
	networkFlag
	From string `arg:"" help:"Departure airport code"`
	To   string `arg:"" help:"Arrival airport code"`
}

func (c *hopsCmd) Run(a *app) error {
	net, err := c.load(a)
	if err != nil {
		return err
	}
	from, err := net.MustLookup(c.From)
	if err != nil {
		return err
	}
	to, err := net.MustLookup(c.To)
	if err != nil {
		return err
	}
	res, err := bfs.BFS(net.Graph(), from)
	if err != nil {
		return err
	}
	path, err := res.PathTo(to)
	if errors.Is(err, bfs.ErrNotReached) {
		return fmt.Errorf("%w: %s → %s", errNoRoute, c.From, c.To)
	}
	if err != nil {
		return err
	}

	codes, err := net.Codes(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, strings.Join(codes, " → "))
	fmt.Fprintf(a.out, "%d hops\n", len(path)-1)

	return nil
}

type benchCmd struct {
	Airports    int    `help:"Vertices in the random network" default:"${airports}"`
	Fanout      int    `help:"Outgoing flights drawn per airport" default:"${fanout}"`
	Seed        int64  `help:"Random seed" default:"${seed}"`
	Runs        int    `help:"Searches per algorithm" default:"${runs}"`
	Backend     string `help:"Graph representation" enum:"adjacency,edgelist,compact" default:"${backend}"`
	MetricsFile string `help:"Write Prometheus metrics to this file" default:"${metrics_file}"`
}

func (c *benchCmd) Run(a *app) error {
	rec := metrics.New()
	rep, err := bench.Run(context.Background(), bench.Config{
		Airports: c.Airports,
		Fanout:   c.Fanout,
		Seed:     c.Seed,
		Runs:     c.Runs,
		Backend:  bench.Backend(c.Backend),
	}, rec, a.log)
	if err != nil {
		return err
	}
	if err := rep.Write(a.out); err != nil {
		return err
	}
	if c.MetricsFile == "" {
		return nil
	}
	if err := rec.WriteToTextfile(c.MetricsFile); err != nil {
		return err
	}
	a.log.WithField("file", c.MetricsFile).Info("metrics written")

	return nil
}
