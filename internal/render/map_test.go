package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vialtrack/route-optimizer-go/internal/optimizer"
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

func sampleTrack() optimizer.Track {
	return optimizer.Track{
		{Lat: 40.4168, Lon: -3.7038},
		{Lat: 40.4200, Lon: -3.7000},
		{Lat: 40.4250, Lon: -3.6950},
	}
}

func TestRender(t *testing.T) {
	html, err := Render(sampleTrack(), "Ruta 42")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(html)
	for _, want := range []string{
		"Ruta 42",
		"L.polyline",
		"START",
		"END",
		"<b>Points:</b> 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered map missing %q", want)
		}
	}
}

func TestRender_EscapesTitle(t *testing.T) {
	html, err := Render(sampleTrack(), "<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(html), "<script>alert(1)</script>") {
		t.Error("route name was not escaped")
	}
}

func TestRender_EmptyTrack(t *testing.T) {
	if _, err := Render(nil, "empty"); !errors.Is(err, optimizer.ErrInsufficientPoints) {
		t.Errorf("error = %v, want ErrInsufficientPoints", err)
	}
}

func TestRender_SinglePoint(t *testing.T) {
	track := optimizer.Track{spatial.Point{Lat: 1, Lon: 2}}
	if _, err := Render(track, "one"); err != nil {
		t.Errorf("Render(single point): %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.html")

	if err := WriteFile(path, sampleTrack(), "Ruta 42"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Ruta 42") {
		t.Error("written file missing route name")
	}
}
