// Command optimize runs the optimization pipeline over one or more GPX
// files and prints the before/after report. It can optionally write the
// optimized path as JSON and as a standalone HTML map.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vialtrack/route-optimizer-go/internal/gpx"
	"github.com/vialtrack/route-optimizer-go/internal/optimizer"
	"github.com/vialtrack/route-optimizer-go/internal/render"
)

func main() {
	levelFlag := flag.String("level", "medium", "optimization level: basic, medium or advanced")
	outFlag := flag.String("out", "", "write the optimized path as JSON to this file")
	mapFlag := flag.String("map", "", "write an HTML map of the optimized path to this file")
	nameFlag := flag.String("name", "Optimized route", "route name used on the map")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: optimize [flags] file.gpx [file.gpx ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level, err := optimizer.ParseLevel(*levelFlag)
	if err != nil {
		log.Fatal(err)
	}

	var tracks []optimizer.Track
	var original optimizer.Track
	for _, path := range flag.Args() {
		doc, err := gpx.Parse(path)
		if err != nil {
			log.Fatal(err)
		}
		points := doc.FlattenPoints()
		log.Printf("Loaded %d points from %s", len(points), path)
		tracks = append(tracks, optimizer.Track(points))
		original = append(original, points...)
	}

	result, err := optimizer.Optimize(tracks, level)
	if err != nil {
		log.Fatal(err)
	}

	report := optimizer.Validate(original, result.Track)

	fmt.Printf("Points:    %d -> %d (%d removed)\n",
		report.OriginalPoints, report.OptimizedPoints, report.PointsReduction)
	fmt.Printf("Distance:  %.2f km -> %.2f km (-%.1f%%)\n",
		report.OriginalDistanceKm, report.OptimizedDistanceKm, report.DistanceReductionPercent)
	fmt.Printf("Backtrack segments removed: %d\n", result.SegmentsRemoved)
	fmt.Printf("Efficiency score: %.1f\n", report.EfficiencyScore)

	if *outFlag != "" {
		data, err := json.MarshalIndent(result.Track, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*outFlag, data, 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote optimized path to %s", *outFlag)
	}

	if *mapFlag != "" {
		if err := render.WriteFile(*mapFlag, result.Track, *nameFlag); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote map to %s", *mapFlag)
	}
}
