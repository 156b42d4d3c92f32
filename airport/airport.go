// SPDX-License-Identifier: MIT
//
// File: airport.go
// Role: Airport payload, Network index and its mutations.

package airport

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/skypath/core"
)

// Sentinel errors for network operations.
var (
	// ErrUnknownAirport indicates a code with no airport in the network.
	ErrUnknownAirport = errors.New("airport: unknown airport")

	// ErrDuplicateAirport indicates AddAirport with a code already present.
	ErrDuplicateAirport = errors.New("airport: duplicate airport")

	// ErrInvalidAirport indicates an empty code or coordinates off the globe.
	ErrInvalidAirport = errors.New("airport: invalid airport")

	// ErrBadDistance indicates a negative or NaN flight distance.
	ErrBadDistance = errors.New("airport: flight distance must be non-negative")
)

// Airport is the vertex payload: an IATA code plus location.
type Airport struct {
	Code string  `yaml:"code"`
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// String returns the code.
func (a Airport) String() string { return a.Code }

func (a Airport) validate() error {
	if a.Code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidAirport)
	}
	if math.IsNaN(a.Lat) || math.IsNaN(a.Lon) || math.Abs(a.Lat) > 90 || math.Abs(a.Lon) > 180 {
		return fmt.Errorf("%w: %s at (%g, %g)", ErrInvalidAirport, a.Code, a.Lat, a.Lon)
	}

	return nil
}

// Network maps airport codes to vertices of a weighted graph whose arc
// weights are flight distances in kilometres.
type Network struct {
	g      core.WeightedGraph[Airport]
	byCode map[string]core.VertexID
}

// NewNetwork wraps g, which must be empty. A nil g gets a directed
// adjacency list.
func NewNetwork(g core.WeightedGraph[Airport]) *Network {
	if g == nil {
		g = core.NewAdjacencyList[Airport]()
	}

	return &Network{g: g, byCode: make(map[string]core.VertexID)}
}

// Graph returns the underlying graph for searching.
func (n *Network) Graph() core.WeightedGraph[Airport] { return n.g }

// Len returns the number of airports.
func (n *Network) Len() int { return len(n.byCode) }

// AddAirport inserts a and returns its vertex.
// Errors: ErrInvalidAirport, ErrDuplicateAirport.
func (n *Network) AddAirport(a Airport) (core.VertexID, error) {
	if err := a.validate(); err != nil {
		return core.NoVertex, err
	}
	if _, ok := n.byCode[a.Code]; ok {
		return core.NoVertex, fmt.Errorf("%w: %s", ErrDuplicateAirport, a.Code)
	}
	v := n.g.InsertVertex(a)
	n.byCode[a.Code] = v

	return v, nil
}

// AddFlight connects from → to with the given distance in kilometres.
// Errors: ErrUnknownAirport, ErrBadDistance, and a wrapped
// core.ErrDuplicateEdge when the leg already exists.
func (n *Network) AddFlight(from, to string, km float64) (core.EdgeID, error) {
	if !(km >= 0) {
		return core.NoEdge, fmt.Errorf("%w: %s→%s %g", ErrBadDistance, from, to, km)
	}
	u, v, err := n.pair(from, to)
	if err != nil {
		return core.NoEdge, err
	}
	e, err := n.g.InsertEdge(u, v, km)
	if err != nil {
		return core.NoEdge, fmt.Errorf("airport: flight %s→%s: %w", from, to, err)
	}

	return e, nil
}

// AddGreatCircleFlight connects from → to weighted by their great-circle
// distance.
func (n *Network) AddGreatCircleFlight(from, to string) (core.EdgeID, error) {
	u, v, err := n.pair(from, to)
	if err != nil {
		return core.NoEdge, err
	}
	a, _ := n.g.Vertex(u)
	b, _ := n.g.Vertex(v)

	return n.AddFlight(from, to, GreatCircleKm(a, b))
}

// RemoveFlight deletes the first flight from → to.
// Errors: ErrUnknownAirport, wrapped core.ErrUnknownEdge when no flight exists.
func (n *Network) RemoveFlight(from, to string) error {
	u, v, err := n.pair(from, to)
	if err != nil {
		return err
	}
	e, ok := n.g.FindEdge(u, v)
	if !ok {
		return fmt.Errorf("airport: flight %s→%s: %w", from, to, core.ErrUnknownEdge)
	}

	return n.g.RemoveEdge(e.ID)
}

// RemoveAirport deletes the airport and every flight touching it.
// Its VertexID is never reused. Errors: ErrUnknownAirport.
func (n *Network) RemoveAirport(code string) error {
	v, ok := n.byCode[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	if err := n.g.RemoveVertex(v); err != nil {
		return fmt.Errorf("airport: remove %s: %w", code, err)
	}
	delete(n.byCode, code)

	return nil
}

// Lookup returns the vertex of code.
func (n *Network) Lookup(code string) (core.VertexID, bool) {
	v, ok := n.byCode[code]

	return v, ok
}

// MustLookup returns the vertex of code or a wrapped ErrUnknownAirport.
func (n *Network) MustLookup(code string) (core.VertexID, error) {
	v, ok := n.byCode[code]
	if !ok {
		return core.NoVertex, fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}

	return v, nil
}

// Airport returns the payload of vertex v.
func (n *Network) Airport(v core.VertexID) (Airport, error) {
	return n.g.Vertex(v)
}

// Airports returns all airports sorted by code.
func (n *Network) Airports() []Airport {
	out := make([]Airport, 0, len(n.byCode))
	for _, v := range n.byCode {
		a, _ := n.g.Vertex(v)
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return out
}

// Codes translates a vertex path into airport codes.
func (n *Network) Codes(path []core.VertexID) ([]string, error) {
	codes := make([]string, len(path))
	for i, v := range path {
		a, err := n.g.Vertex(v)
		if err != nil {
			return nil, err
		}
		codes[i] = a.Code
	}

	return codes, nil
}

func (n *Network) pair(from, to string) (core.VertexID, core.VertexID, error) {
	u, err := n.MustLookup(from)
	if err != nil {
		return core.NoVertex, core.NoVertex, err
	}
	v, err := n.MustLookup(to)
	if err != nil {
		return core.NoVertex, core.NoVertex, err
	}

	return u, v, nil
}
