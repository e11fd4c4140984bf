package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/shatter/fracture"
)

// Demo of polygon fracture. Input on stdin should be newline separated
// points in the form "x y" describing one simple polygon. The fragments are
// rendered to a PNG, one color per cell, with generator sites marked.
var (
	sites   = kingpin.Flag("sites", "Target number of fragments.").Short('n').Default("16").Int()
	jitter  = kingpin.Flag("jitter", "Site jitter magnitude in input units.").Default("0").Float64()
	seed    = kingpin.Flag("seed", "Random seed; same seed, same fracture.").Default("1").Int64()
	depth   = kingpin.Flag("depth", "Recursive fracture depth.").Default("1").Int()
	workers = kingpin.Flag("workers", "Goroutines for per-cell clipping.").Default("1").Int()
	scale   = kingpin.Flag("scale", "Output pixels per input unit.").Default("4").Float64()
	out     = kingpin.Flag("out", "Output PNG path.").Short('o').Default("fragments.png").String()
)

func main() {
	kingpin.Parse()

	boundary := readPolygon(os.Stdin)
	fmt.Printf("Read a polygon with %d points\n", len(boundary.Points))

	opts := fracture.Options{
		Sites:   *sites,
		Jitter:  *jitter,
		Seed:    *seed,
		Workers: *workers,
	}
	fragments, err := fracture.FractureDepth(boundary, opts, *depth)
	if err != nil {
		log.Fatalf("Fracture failed: %v", err)
	}
	if len(fragments) == 0 {
		log.Fatal("No fragments; boundary too small for that many sites?")
	}

	var total float64
	for _, frag := range fragments {
		total += frag.Polygon.Area()
	}
	fmt.Printf("%s fragments covering %.2f of %.2f input area\n",
		aurora.Green(strconv.Itoa(len(fragments))), total, boundary.Area())

	if err := fracture.DrawPNG(fragments, *out, *scale); err != nil {
		log.Fatalf("Could not write %q: %v", *out, err)
	}
	fmt.Println("Wrote", *out)
}

func readPolygon(in *os.File) fracture.Polygon {
	var points []fracture.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return fracture.Polygon{Points: points}
}

func parsePoint(line string) fracture.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	return fracture.Point{X: x, Y: y}
}
