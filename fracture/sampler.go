package fracture

import (
	"math"
	"math/rand"
)

// SampleSites places up to count generator sites strictly inside the
// boundary by rejection sampling its bounding box. A given seed and
// parameter set always produces the same site list, which is what makes
// fracture patterns reproducible.
//
// Jitter perturbs each accepted point by a random vector of magnitude at
// most jitter. A perturbed point that lands outside the boundary is clamped
// to the nearest boundary point instead of being rerolled, so jitter never
// silently reduces the site count.
//
// Sites closer than a small epsilon (relative to the boundary extent) to an
// already-placed site are rejected; duplicate or near-duplicate sites are
// poison for the triangulation. The attempt budget is bounded, so a boundary
// too small to hold count well-separated sites yields fewer sites rather
// than a hang. Callers must treat a short result as a valid outcome.
func SampleSites(boundary Polygon, count int, jitter float64, seed int64) []Point {
	if len(boundary.Points) < 3 || count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	min, max := boundary.Bounds()
	width := max.X - min.X
	height := max.Y - min.Y
	dedupEpsilon := math.Min(width, height) * 1e-4

	budget := 200
	if count*100 > budget {
		budget = count * 100
	}

	sites := make([]Point, 0, count)
	for attempt := 0; attempt < budget && len(sites) < count; attempt++ {
		p := Point{
			X: min.X + rng.Float64()*width,
			Y: min.Y + rng.Float64()*height,
		}
		if !boundary.ContainsPoint(p) {
			continue
		}
		if jitter > 0 {
			angle := rng.Float64() * 2 * math.Pi
			radius := rng.Float64() * jitter
			jittered := Point{
				X: p.X + radius*math.Cos(angle),
				Y: p.Y + radius*math.Sin(angle),
			}
			if !boundary.ContainsPoint(jittered) {
				jittered = boundary.ClosestBoundaryPoint(jittered)
			}
			p = jittered
		}
		if tooClose(sites, p, dedupEpsilon) {
			continue
		}
		sites = append(sites, p)
	}
	return sites
}

func tooClose(sites []Point, p Point, epsilon float64) bool {
	epsSq := epsilon * epsilon
	for _, s := range sites {
		if s.DistSq(p) < epsSq {
			return true
		}
	}
	return false
}
