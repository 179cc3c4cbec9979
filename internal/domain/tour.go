package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Tour is an ordered sequence of one-based city numbers.
// A closed tour repeats its start city as the last element;
// an open path visits each city once with no return edge.
type Tour []int

// Closed reports whether the tour returns to its start city.
func (t Tour) Closed() bool {
	return len(t) > 1 && t[0] == t[len(t)-1]
}

func (t Tour) String() string {
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Heuristic names a tour-construction strategy.
type Heuristic int

const (
	InOrder Heuristic = iota + 1
	NearestNeighbor
	FurthestNeighbor
)

// Heuristics in report order.
var AllHeuristics = []Heuristic{InOrder, NearestNeighbor, FurthestNeighbor}

func (h Heuristic) String() string {
	switch h {
	case InOrder:
		return "in-order"
	case NearestNeighbor:
		return "nearest-neighbor"
	case FurthestNeighbor:
		return "furthest-neighbor"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// Label is the heading used by the text report.
func (h Heuristic) Label() string {
	switch h {
	case InOrder:
		return "IN-ORDER TOUR LENGTH"
	case NearestNeighbor:
		return "NEAREST NEIGHBOR LENGTH"
	case FurthestNeighbor:
		return "FURTHEST NEIGHBOR LENGTH"
	default:
		return strings.ToUpper(h.String())
	}
}

// ParseHeuristic accepts the stable name or a short alias.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in-order", "inorder", "i":
		return InOrder, nil
	case "nearest-neighbor", "nearest", "n":
		return NearestNeighbor, nil
	case "furthest-neighbor", "furthest", "f":
		return FurthestNeighbor, nil
	}
	return 0, fmt.Errorf("parse heuristic: unknown heuristic %q", s)
}
