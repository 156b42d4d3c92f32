// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: YAML network documents.
//
// Document shape:
//
//	airports:
//	  - {code: DUB, name: Dublin, lat: 53.4213, lon: -6.2701}
//	flights:
//	  - {from: DUB, to: LHR, distance: 449}   # distance is optional (km)

package airport

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skypath/core"
)

// ErrBadDocument wraps every decoding or content failure in Load.
var ErrBadDocument = errors.New("airport: bad network document")

// Document is the YAML form of a network.
type Document struct {
	Airports []Airport `yaml:"airports"`
	Flights  []Flight  `yaml:"flights"`
}

// Flight is one directed leg. A nil Distance means great-circle.
type Flight struct {
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`
	Distance *float64 `yaml:"distance,omitempty"`
}

// Load decodes a YAML document from r into a new Network over g (nil g
// gets a directed adjacency list). Unknown fields are rejected.
// Every failure wraps ErrBadDocument together with the underlying cause.
func Load(r io.Reader, g core.WeightedGraph[Airport]) (*Network, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadDocument)
		}

		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return doc.Build(g)
}

// Build materialises the document into a Network over g.
func (d Document) Build(g core.WeightedGraph[Airport]) (*Network, error) {
	n := NewNetwork(g)
	for i, a := range d.Airports {
		if _, err := n.AddAirport(a); err != nil {
			return nil, fmt.Errorf("%w: airports[%d]: %w", ErrBadDocument, i, err)
		}
	}
	for i, f := range d.Flights {
		var err error
		if f.Distance == nil {
			_, err = n.AddGreatCircleFlight(f.From, f.To)
		} else {
			_, err = n.AddFlight(f.From, f.To, *f.Distance)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: flights[%d]: %w", ErrBadDocument, i, err)
		}
	}

	return n, nil
}

// Encode writes the network as a YAML document with explicit distances.
func (n *Network) Encode(w io.Writer) error {
	doc := Document{Airports: n.Airports()}
	for _, e := range n.g.Edges() {
		from, _ := n.g.Vertex(e.From)
		to, _ := n.g.Vertex(e.To)
		km := e.Weight
		doc.Flights = append(doc.Flights, Flight{From: from.Code, To: to.Code, Distance: &km})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("airport: encode: %w", err)
	}

	return enc.Close()
}
