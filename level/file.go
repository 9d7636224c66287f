package level

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/longtour/geom"
)

// Level is one named point set.
type Level struct {
	Name   string
	Points []geom.Point
}

// levelDoc is the on-disk form of a Level:
//
//	- name: rectangle
//	  points: [[0, 0], [4, 0], [4, 3], [0, 3]]
type levelDoc struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points"`
}

// Decode reads a YAML list of levels. Every level needs at least one point
// and every point exactly two coordinates.
func Decode(r io.Reader) ([]Level, error) {
	var docs []levelDoc
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoLevels
		}
		return nil, fmt.Errorf("%w: %v", ErrBadLevelFile, err)
	}
	if len(docs) == 0 {
		return nil, ErrNoLevels
	}

	levels := make([]Level, len(docs))
	for i, d := range docs {
		if len(d.Points) == 0 {
			return nil, fmt.Errorf("%w: level %d (%q)", ErrTooFewPoints, i, d.Name)
		}
		pts := make([]geom.Point, len(d.Points))
		for k, xy := range d.Points {
			if len(xy) != 2 {
				return nil, fmt.Errorf("%w: level %d (%q) point %d has %d coordinates",
					ErrBadLevelFile, i, d.Name, k, len(xy))
			}
			pts[k] = geom.Pt(xy[0], xy[1])
		}
		levels[i] = Level{Name: d.Name, Points: pts}
	}

	return levels, nil
}

// Encode writes levels in the form Decode reads.
func Encode(w io.Writer, levels []Level) error {
	docs := make([]levelDoc, len(levels))
	for i, l := range levels {
		docs[i].Name = l.Name
		docs[i].Points = make([][]float64, len(l.Points))
		for k, p := range l.Points {
			docs[i].Points[k] = []float64{p.X, p.Y}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("level: encode: %w", err)
	}

	return enc.Close()
}
