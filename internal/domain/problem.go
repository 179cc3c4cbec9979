package domain

import (
	"errors"
	"fmt"
)

var ErrCityOutOfRange = errors.New("city number out of range")

// CoordinateSystem is the EDGE_WEIGHT_TYPE of a problem.
type CoordinateSystem int

const (
	Planar CoordinateSystem = iota + 1
	Geographic
)

func (c CoordinateSystem) String() string {
	switch c {
	case Planar:
		return "EUC_2D"
	case Geographic:
		return "GEO"
	default:
		return fmt.Sprintf("CoordinateSystem(%d)", int(c))
	}
}

// ParseCoordinateSystem maps a TSPLIB EDGE_WEIGHT_TYPE tag to a CoordinateSystem.
func ParseCoordinateSystem(tag string) (CoordinateSystem, bool) {
	switch tag {
	case "EUC_2D":
		return Planar, true
	case "GEO":
		return Geographic, true
	}
	return 0, false
}

// Represents one parsed TSP instance.
// A Problem is built once by the parser and treated as read-only afterwards.
// Cities[i] holds city number i+1; every city uses CoordinateSystem.
type Problem struct {
	Name             string
	Comment          string
	Type             string
	CoordinateSystem CoordinateSystem
	Dimension        int
	Cities           []Coordinate
}

// City returns the coordinate of the one-based city number n.
func (p *Problem) City(n int) (Coordinate, error) {
	if n < 1 || n > len(p.Cities) {
		return nil, fmt.Errorf("city %d of %d: %w", n, len(p.Cities), ErrCityOutOfRange)
	}
	return p.Cities[n-1], nil
}

// Distance between two cities by their one-based numbers.
func (p *Problem) Distance(i, j int) (int, error) {
	a, err := p.City(i)
	if err != nil {
		return 0, err
	}
	b, err := p.City(j)
	if err != nil {
		return 0, err
	}
	return Distance(a, b)
}
