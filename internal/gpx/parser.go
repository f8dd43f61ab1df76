package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

// Parse reads and parses a GPX file.
func Parse(filename string) (*GPX, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open GPX file: %w", err)
	}
	defer file.Close()

	doc, err := ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}

// ParseReader parses GPX from an io.Reader.
func ParseReader(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)

	var doc GPX
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	return &doc, nil
}

// FlattenPoints returns every track point in document order, flattened
// across tracks and segments, as engine-ready coordinates.
func (g *GPX) FlattenPoints() []spatial.Point {
	var points []spatial.Point

	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				points = append(points, spatial.Point{Lat: p.Lat, Lon: p.Lon})
			}
		}
	}

	return points
}
