package optimizer

import (
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

func point(lat, lon float64) spatial.Point {
	return spatial.Point{Lat: lat, Lon: lon}
}

// zigzag builds a west-to-east track whose odd points wiggle off the axis by
// the given amplitudes (degrees of latitude), cycling through them.
func zigzag(n int, amplitudes ...float64) Track {
	track := make(Track, 0, n)
	for i := 0; i < n; i++ {
		lat := 0.0
		if i%2 == 1 && len(amplitudes) > 0 {
			lat = amplitudes[(i/2)%len(amplitudes)]
		}
		track = append(track, point(lat, float64(i)*0.001))
	}
	return track
}
