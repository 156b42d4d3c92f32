// Command skypath plans routes over a YAML flight network and benchmarks
// the search algorithms on synthetic networks.
//
// Settings come from defaults, the YAML file named by SKYPATH_CONFIG and
// SKYPATH_* variables; flags override all of them.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/skypath/internal/config"
	"github.com/katalvlaran/skypath/internal/logger"
)

type CLI struct {
	LogLevel  string `help:"Log level (debug, info, warn, error)" default:"${log_level}"`
	LogFormat string `help:"Log format" enum:"text,json" default:"${log_format}"`

	Route     routeCmd     `cmd:"" help:"Cheapest route between two airports"`
	Distances distancesCmd `cmd:"" help:"Cheapest distance from one airport to every other"`
	Hops      hopsCmd      `cmd:"" help:"Route with the fewest flights between two airports"`
	Bench     benchCmd     `cmd:"" help:"Time Dijkstra and A* on a random network"`
}

// app is bound into every command's Run method.
type app struct {
	log *logrus.Logger
	out io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Exit); err != nil {
		fmt.Fprintf(os.Stderr, "skypath: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer, exit func(int)) error {
	cfg, err := config.Load(os.Getenv("SKYPATH_CONFIG"))
	if err != nil {
		return err
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("skypath"),
		kong.Description("Shortest paths over flight networks."),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.UsageOnError(),
		vars(cfg),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	log, err := logger.New(cli.LogLevel, cli.LogFormat, stderr)
	if err != nil {
		return err
	}
	log.WithField("command", kctx.Command()).Debug("start")

	return kctx.Run(&app{log: log, out: stdout})
}

// vars exposes the resolved configuration as flag defaults.
func vars(cfg *config.Config) kong.Vars {
	return kong.Vars{
		"log_level":    cfg.LogLevel,
		"log_format":   cfg.LogFormat,
		"network":      cfg.Network,
		"algorithm":    cfg.Algorithm,
		"airports":     strconv.Itoa(cfg.Bench.Airports),
		"fanout":       strconv.Itoa(cfg.Bench.Fanout),
		"seed":         strconv.FormatInt(cfg.Bench.Seed, 10),
		"runs":         strconv.Itoa(cfg.Bench.Runs),
		"backend":      cfg.Bench.Backend,
		"metrics_file": cfg.Bench.MetricsFile,
	}
}
