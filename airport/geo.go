// SPDX-License-Identifier: MIT
//
// File: geo.go
// Role: great-circle distance and the A* heuristic built on it.

package airport

import (
	"math"

	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/core"
)

// EarthRadiusKm is the mean Earth radius (IUGG).
const EarthRadiusKm = 6371.0088

// GreatCircleKm returns the haversine distance between two airports.
func GreatCircleKm(a, b Airport) float64 {
	const rad = math.Pi / 180
	lat1, lat2 := a.Lat*rad, b.Lat*rad
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * rad

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(s)))
}

// Heuristic estimates the remaining distance to goal as the great-circle
// distance. It is admissible whenever every flight is at least as long as
// the great circle between its airports, which holds for networks built
// with AddGreatCircleFlight or loaded without explicit distances.
// Unknown vertices estimate 0.
func Heuristic(n *Network, goal core.VertexID) astar.Heuristic {
	target, err := n.Airport(goal)
	if err != nil {
		return astar.Zero
	}

	return func(v core.VertexID) float64 {
		a, err := n.Airport(v)
		if err != nil {
			return 0
		}

		return GreatCircleKm(a, target)
	}
}
