package bench

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the samples of one algorithm.
type Stats struct {
	Algorithm string
	Mean      time.Duration
	StdDev    time.Duration
	Median    time.Duration
	P90       time.Duration
	Max       time.Duration
	// Settled is the mean number of vertices settled (Dijkstra) or
	// expanded (A*) per search.
	Settled float64
}

type samples struct {
	algorithm string
	seconds   []float64
	settled   []float64
}

func newSamples(algorithm string, n int) *samples {
	return &samples{
		algorithm: algorithm,
		seconds:   make([]float64, 0, n),
		settled:   make([]float64, 0, n),
	}
}

func (s *samples) add(d time.Duration, settled int) {
	s.seconds = append(s.seconds, d.Seconds())
	s.settled = append(s.settled, float64(settled))
}

func (s *samples) last() time.Duration {
	return seconds(s.seconds[len(s.seconds)-1])
}

// summary must be called with at least one sample.
func (s *samples) summary() Stats {
	xs := append([]float64(nil), s.seconds...)
	sort.Float64s(xs)

	st := Stats{
		Algorithm: s.algorithm,
		Mean:      seconds(stat.Mean(xs, nil)),
		Median:    seconds(stat.Quantile(0.5, stat.Empirical, xs, nil)),
		P90:       seconds(stat.Quantile(0.9, stat.Empirical, xs, nil)),
		Max:       seconds(floats.Max(xs)),
		Settled:   stat.Mean(s.settled, nil),
	}
	if len(xs) > 1 {
		st.StdDev = seconds(stat.StdDev(xs, nil))
	}

	return st
}

func seconds(x float64) time.Duration {
	return time.Duration(x * float64(time.Second))
}

// Write prints the report as an aligned table.
func (r *Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "backend\t%s\n", r.Backend)
	fmt.Fprintf(tw, "vertices\t%d\n", r.Vertices)
	fmt.Fprintf(tw, "edges\t%d\n", r.Edges)
	fmt.Fprintf(tw, "build\t%s\n", r.Build.Round(time.Microsecond))
	fmt.Fprintf(tw, "found\t%d/%d\n\n", r.Found, r.Runs)
	fmt.Fprintln(tw, "algorithm\tmean\tstddev\tp50\tp90\tmax\tsettled")
	for _, s := range r.Stats {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f\n",
			s.Algorithm, round(s.Mean), round(s.StdDev), round(s.Median),
			round(s.P90), round(s.Max), s.Settled)
	}

	return tw.Flush()
}

func round(d time.Duration) time.Duration { return d.Round(time.Microsecond) }
