// Package render turns an optimized track into a self-contained HTML map.
// The artifact embeds Leaflet from a CDN, draws the track as a connected
// path with start/end markers and a summary box. The exact byte format is
// presentation, not a compatibility contract.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"github.com/vialtrack/route-optimizer-go/internal/optimizer"
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

const routeColor = "#2E8B57"

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  html, body, #map { height: 100%; margin: 0; }
  .route-info {
    position: fixed; top: 10px; right: 10px; width: 280px; z-index: 9999;
    background: rgba(255,255,255,0.9); border: 2px solid {{.Color}};
    border-radius: 5px; font: 14px sans-serif; padding: 15px;
    box-shadow: 0 2px 10px rgba(0,0,0,0.3);
  }
  .route-info h4 { margin: 0 0 10px 0; color: {{.Color}}; }
  .route-info p { margin: 5px 0; }
</style>
</head>
<body>
<div id="map"></div>
<div class="route-info">
  <h4>{{.Name}}</h4>
  <p><b>Distance:</b> {{.DistanceKm}} km</p>
  <p><b>Points:</b> {{.PointCount}}</p>
</div>
<script>
var points = {{.Points}};
var map = L.map('map');
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

var coords = points.map(function (p) { return [p.lat, p.lng]; });
L.polyline(coords, { color: '{{.Color}}', weight: 5, opacity: 0.8 }).addTo(map);

L.marker(coords[0]).addTo(map).bindPopup('<b>START</b>');
L.marker(coords[coords.length - 1]).addTo(map).bindPopup('<b>END</b>');

map.fitBounds([[{{.MinLat}}, {{.MinLon}}], [{{.MaxLat}}, {{.MaxLon}}]], { padding: [30, 30] });
</script>
</body>
</html>
`))

type mapData struct {
	Name       string
	Color      string
	DistanceKm string
	PointCount int
	Points     template.JS
	MinLat     float64
	MinLon     float64
	MaxLat     float64
	MaxLon     float64
}

// Render produces the HTML map artifact for a track. The track must contain
// at least one point; a single point renders a map with coincident markers.
func Render(track optimizer.Track, name string) ([]byte, error) {
	if len(track) == 0 {
		return nil, optimizer.ErrInsufficientPoints
	}

	pointsJSON, err := json.Marshal(track)
	if err != nil {
		return nil, fmt.Errorf("failed to encode track: %w", err)
	}

	minLat, minLon, maxLat, maxLon := spatial.BoundingBox(track)

	data := mapData{
		Name:       name,
		Color:      routeColor,
		DistanceKm: fmt.Sprintf("%.2f", track.TotalDistance()/1000),
		PointCount: len(track),
		Points:     template.JS(pointsJSON),
		MinLat:     minLat,
		MinLon:     minLon,
		MaxLat:     maxLat,
		MaxLon:     maxLon,
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render map: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile renders the map and writes it to path.
func WriteFile(path string, track optimizer.Track, name string) error {
	html, err := Render(track, name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	return nil
}
