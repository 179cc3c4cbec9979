// Package tsplib reads the node-coordinate subset of the TSPLIB 95 format.
//
// Supported headers are NAME, TYPE, COMMENT, DIMENSION and EDGE_WEIGHT_TYPE
// (EUC_2D or GEO), followed by a NODE_COORD_SECTION with one numbered city
// per line. Other keywords are ignored.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"tsp-tour-service/internal/domain"
)

var (
	ErrMalformedHeader             = errors.New("tsplib: malformed header")
	ErrUnsupportedCoordinateSystem = errors.New("tsplib: unsupported coordinate system")
	ErrCityIndexMismatch           = errors.New("tsplib: city index mismatch")
	ErrMalformedCity               = errors.New("tsplib: malformed city line")
)

const (
	maxLineBytes = 1 << 20

	// DIMENSION is untrusted; cities are appended past this as lines arrive.
	maxPreallocCities = 1024
)

// header holds the keyword values seen before NODE_COORD_SECTION.
type header struct {
	name           string
	comment        string
	problemType    string
	dimension      int
	hasDimension   bool
	edgeWeightType string
	hasSection     bool
}

// ParseFile reads and parses the TSPLIB file at path.
func ParseFile(path string) (*domain.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse file %q: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse file %q: %w", path, err)
	}
	return p, nil
}

// Parse builds a Problem from TSPLIB text in a single pass.
func Parse(r io.Reader) (*domain.Problem, error) {
	sc := &lineScanner{s: bufio.NewScanner(r)}
	sc.s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	h, err := scanHeader(sc)
	if err != nil {
		return nil, err
	}

	cs, err := h.validate(sc.lineNo)
	if err != nil {
		return nil, err
	}

	cities, err := readCities(sc, cs, h.dimension)
	if err != nil {
		return nil, err
	}

	return &domain.Problem{
		Name:             h.name,
		Comment:          h.comment,
		Type:             h.problemType,
		CoordinateSystem: cs,
		Dimension:        h.dimension,
		Cities:           cities,
	}, nil
}

type lineScanner struct {
	s      *bufio.Scanner
	lineNo int
}

// next returns the next non-blank line split into fields.
func (l *lineScanner) next() ([]string, bool, error) {
	for l.s.Scan() {
		l.lineNo++
		if fields := strings.Fields(l.s.Text()); len(fields) > 0 {
			return fields, true, nil
		}
	}
	if err := l.s.Err(); err != nil {
		return nil, false, fmt.Errorf("tsplib: read line %d: %w", l.lineNo+1, err)
	}
	return nil, false, nil
}

func scanHeader(sc *lineScanner) (*header, error) {
	h := &header{}
	for {
		fields, ok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return h, nil
		}

		keyword, value := splitKeyword(fields)
		switch keyword {
		case "COMMENT":
			if h.comment != "" && value != "" {
				h.comment += " "
			}
			h.comment += value
		case "NAME":
			h.name = value
		case "TYPE":
			h.problemType = value
		case "DIMENSION":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: invalid DIMENSION %q", ErrMalformedHeader, sc.lineNo, value)
			}
			h.dimension = n
			h.hasDimension = true
		case "EDGE_WEIGHT_TYPE":
			h.edgeWeightType = value
		case "NODE_COORD_SECTION":
			h.hasSection = true
			return h, nil
		}
	}
}

// splitKeyword separates "KEY: value", "KEY : value" and "KEY:value".
func splitKeyword(fields []string) (string, string) {
	first := fields[0]
	rest := strings.Join(fields[1:], " ")
	if i := strings.IndexByte(first, ':'); i > 0 && i < len(first)-1 {
		rest = strings.TrimSpace(first[i+1:] + " " + rest)
		first = first[:i]
	}
	return strings.Trim(first, ": "), strings.Trim(rest, ": ")
}

func (h *header) validate(lineNo int) (domain.CoordinateSystem, error) {
	if !h.hasDimension {
		return 0, fmt.Errorf("%w: line %d: DIMENSION missing before coordinate section", ErrMalformedHeader, lineNo)
	}
	if h.edgeWeightType == "" {
		return 0, fmt.Errorf("%w: line %d: EDGE_WEIGHT_TYPE missing before coordinate section", ErrMalformedHeader, lineNo)
	}

	cs, ok := domain.ParseCoordinateSystem(h.edgeWeightType)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCoordinateSystem, h.edgeWeightType)
	}

	if h.dimension > 0 && !h.hasSection {
		return 0, fmt.Errorf("%w: NODE_COORD_SECTION missing", ErrMalformedHeader)
	}
	return cs, nil
}

func readCities(sc *lineScanner, cs domain.CoordinateSystem, dimension int) ([]domain.Coordinate, error) {
	cities := make([]domain.Coordinate, 0, min(dimension, maxPreallocCities))
	for n := 1; n <= dimension; n++ {
		fields, ok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: unexpected end of input, read %d of %d cities", ErrMalformedCity, n-1, dimension)
		}

		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: line %d: want index and two coordinates, got %d fields", ErrMalformedCity, sc.lineNo, len(fields))
		}

		index, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid city index %q", ErrMalformedCity, sc.lineNo, fields[0])
		}
		if index != n {
			return nil, fmt.Errorf("%w: line %d: expected city %d, got %d", ErrCityIndexMismatch, sc.lineNo, n, index)
		}

		c, err := parseCoordinate(cs, fields[1], fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: city %d: %v", ErrMalformedCity, sc.lineNo, n, err)
		}
		cities = append(cities, c)
	}
	return cities, nil
}

func parseCoordinate(cs domain.CoordinateSystem, a, b string) (domain.Coordinate, error) {
	switch cs {
	case domain.Planar:
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(b, 64)
		if err != nil {
			return nil, err
		}
		return domain.PlanarPoint{X: x, Y: y}, nil
	case domain.Geographic:
		lat, err := ParseGeoAngle(a)
		if err != nil {
			return nil, err
		}
		lon, err := ParseGeoAngle(b)
		if err != nil {
			return nil, err
		}
		return domain.NewGeoPoint(lat, lon), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCoordinateSystem, cs)
}

// ParseGeoAngle decodes a packed DDD.MM token: the integer part is degrees and
// the digits after the point are minutes, with any digits past the second
// read as fractional minutes ("38.583333" is 38° 58.3333').
//
// Do not read the token as decimal degrees (38.583333 as 38° 35'). TSPLIB
// computes min = 5*(x-deg)/3 on exactly this packed form, and the published
// burma14 optimum of 3323 only reproduces with this reading.
func ParseGeoAngle(tok string) (domain.GeoAngle, error) {
	s := tok
	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if s == "" || s == "." {
		return domain.GeoAngle{}, fmt.Errorf("empty GEO angle %q", tok)
	}

	degPart, minPart, _ := strings.Cut(s, ".")
	if degPart == "" {
		degPart = "0"
	}
	deg, err := strconv.ParseUint(degPart, 10, 32)
	if err != nil {
		return domain.GeoAngle{}, fmt.Errorf("invalid GEO degrees in %q", tok)
	}

	var minutes float64
	if minPart != "" {
		for len(minPart) < 2 {
			minPart += "0"
		}
		if strings.ContainsAny(minPart, "+-eE") {
			return domain.GeoAngle{}, fmt.Errorf("invalid GEO minutes in %q", tok)
		}
		packed := minPart[:2]
		if len(minPart) > 2 {
			packed += "." + minPart[2:]
		}
		minutes, err = strconv.ParseFloat(packed, 64)
		if err != nil {
			return domain.GeoAngle{}, fmt.Errorf("invalid GEO minutes in %q", tok)
		}
	}

	if negative {
		return domain.GeoAngle{Degrees: -float64(deg), Minutes: -minutes}, nil
	}
	return domain.GeoAngle{Degrees: float64(deg), Minutes: minutes}, nil
}
