// Package gpx reads GPX 1.1 track logs into plain point sequences.
// It lives at the boundary: the optimization engine itself never touches
// file formats.
package gpx

import "encoding/xml"

// Point is a single <trkpt> element. Only the coordinates matter to the
// optimizer; elevation and time are carried through for callers that want
// them.
type Point struct {
	Lat       float64 `xml:"lat,attr"`
	Lon       float64 `xml:"lon,attr"`
	Elevation float64 `xml:"ele,omitempty"`
	Time      string  `xml:"time,omitempty"`
}

// Segment is a <trkseg> element.
type Segment struct {
	Points []Point `xml:"trkpt"`
}

// Track is a <trk> element with its segments.
type Track struct {
	Name     string    `xml:"name,omitempty"`
	Segments []Segment `xml:"trkseg"`
}

// GPX is the document root.
type GPX struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Tracks  []Track  `xml:"trk"`
}
