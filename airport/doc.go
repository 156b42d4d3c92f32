// Package airport layers an IATA-coded flight network over a
// core.WeightedGraph[Airport].
//
// A Network keeps the code → VertexID index next to the graph so callers
// work in airport codes while the searches work in dense identities:
//
//	n := airport.NewNetwork(core.NewAdjacencyList[airport.Airport]())
//	_, _ = n.AddAirport(airport.Airport{Code: "DUB", Name: "Dublin", Lat: 53.42, Lon: -6.27})
//	...
//	from, _ := n.Lookup("DUB")
//	to, _ := n.Lookup("BER")
//	res, _ := astar.Search(n.Graph(), from, to, airport.Heuristic(n, to))
//	codes, _ := n.Codes(res.Path)
//
// Networks load from YAML documents (see Load). Flights without an explicit
// distance get the great-circle distance between their endpoints, which
// makes Heuristic admissible for the whole network.
package airport
