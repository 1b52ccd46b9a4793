package hexlife

import (
	"errors"
	"fmt"

	"hexlife/pkg/hex"
)

// ErrInvalidRadius is returned for discs smaller than radius 1.
var ErrInvalidRadius = errors.New("hexlife: radius must be at least 1")

// BuildEdgeLookup maps every coordinate on the ring just outside a disc of the
// given radius to its equivalent cell on the opposite edge. Mirrors are tried
// in ascending order and the first one within radius wins.
func BuildEdgeLookup(radius int) (map[hex.Coord]hex.Coord, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	mirrors := hex.Torus{Radius: radius}.Mirrors()
	ring := hex.Ring(hex.Origin, radius+1)
	edges := make(map[hex.Coord]hex.Coord, len(ring))
	for _, c := range ring {
		for _, m := range mirrors {
			if hex.Distance(c, m) <= radius {
				edges[c] = c.Sub(m)
				break
			}
		}
	}
	return edges, nil
}

func resolve(edges map[hex.Coord]hex.Coord, c hex.Coord) hex.Coord {
	if wrapped, ok := edges[c]; ok {
		return wrapped
	}
	return c
}
