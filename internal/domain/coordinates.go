package domain

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Radius of the idealized sphere used by TSPLIB GEO instances, in kilometers.
const EarthRadiusKm = 6378.388

var ErrTypeMismatch = errors.New("coordinate type mismatch")

// Coordinate is a city position in one of the supported coordinate systems.
type Coordinate interface {
	System() CoordinateSystem
}

// Position on the Euclidean plane (EUC_2D).
type PlanarPoint struct {
	X float64
	Y float64
}

func (PlanarPoint) System() CoordinateSystem { return Planar }

// Immutable geographic position (GEO), stored in radians.
type GeoPoint struct {
	Lat float64
	Lon float64
}

func (GeoPoint) System() CoordinateSystem { return Geographic }

// GeoAngle is a degree/minute pair as written in TSPLIB GEO files.
// A negative angle carries the sign on both parts so that the minutes
// always add magnitude: -35° 30' is -35.5°, not -34.5°.
type GeoAngle struct {
	Degrees float64
	Minutes float64
}

// NewGeoAngle builds an angle from signed degrees and unsigned minutes.
func NewGeoAngle(degrees, minutes float64) GeoAngle {
	if degrees < 0 {
		return GeoAngle{Degrees: degrees, Minutes: -minutes}
	}
	return GeoAngle{Degrees: degrees, Minutes: minutes}
}

func (a GeoAngle) Radians() float64 {
	return (a.Degrees + a.Minutes/60) * math.Pi / 180
}

func NewGeoPoint(lat, lon GeoAngle) GeoPoint {
	return GeoPoint{Lat: lat.Radians(), Lon: lon.Radians()}
}

// Distance returns the TSPLIB distance between two coordinates of the same system.
func Distance(a, b Coordinate) (int, error) {
	switch pa := a.(type) {
	case PlanarPoint:
		pb, ok := b.(PlanarPoint)
		if !ok {
			return 0, mismatch(a, b)
		}
		return PlanarDistance(pa, pb), nil
	case GeoPoint:
		gb, ok := b.(GeoPoint)
		if !ok {
			return 0, mismatch(a, b)
		}
		return GeoDistance(pa, gb), nil
	default:
		return 0, mismatch(a, b)
	}
}

func mismatch(a, b Coordinate) error {
	return fmt.Errorf("distance: %w: %s and %s", ErrTypeMismatch, systemOf(a), systemOf(b))
}

func systemOf(c Coordinate) string {
	if c == nil {
		return "<nil>"
	}
	return c.System().String()
}

// Euclidean distance rounded half-to-even to the nearest integer.
func PlanarDistance(a, b PlanarPoint) int {
	d := r2.Norm(r2.Sub(r2.Vec{X: a.X, Y: a.Y}, r2.Vec{X: b.X, Y: b.Y}))
	return int(math.RoundToEven(d))
}

// Great-circle distance per TSPLIB 95. Unlike PlanarDistance the result
// is truncated toward zero, not rounded.
func GeoDistance(a, b GeoPoint) int {
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0
	}

	q1 := math.Cos(a.Lon - b.Lon)
	q2 := math.Cos(a.Lat - b.Lat)
	q3 := math.Cos(a.Lat + b.Lat)

	// Near-identical points can push the argument just past 1.
	arg := 0.5 * ((1+q1)*q2 - (1-q1)*q3)
	arg = math.Max(-1, math.Min(1, arg))

	return int(EarthRadiusKm*math.Acos(arg) + 1)
}
