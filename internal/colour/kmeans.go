// Package colour provides color extraction and palette generation functionality.
package colour

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
)

// KMeansExtractor implements color extraction using k-means clustering over
// the same reduced-precision, filtered colour population the median-cut
// engine quantizes (see histogram.go and filter.go): pixels are bucketed by
// Histogram and near-black/near-white/skin-tone buckets are dropped via
// shouldIgnore before clustering, rather than clustering raw sampled pixels.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
	}
}

// Extract extracts colors from an image using k-means clustering.
// Returns colors with their relative weights (cluster population share).
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("color count too large: %d (maximum: 256)", count)
	}

	pixels := flattenToColor32(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	hist := BuildHistogram(pixels)
	reducedColors, reducedCounts := hist.Colors()

	candidates := make([]Color32, 0, len(reducedColors))
	weights := make([]int, 0, len(reducedColors))
	for i, c := range reducedColors {
		if shouldIgnore(ToHSL(c.ToRGB())) {
			continue
		}
		candidates = append(candidates, c)
		weights = append(weights, reducedCounts[i])
	}
	if len(candidates) == 0 {
		// Every reduced bucket was filtered out, e.g. a near-solid dark or
		// light image. Fall back to the unfiltered histogram rather than
		// returning an empty palette.
		candidates = reducedColors
		weights = reducedCounts
	}

	if count >= len(candidates) {
		total := 0
		for _, w := range weights {
			total += w
		}
		colors := make([]color.Color, len(candidates))
		shares := make([]float64, len(candidates))
		for i, c := range candidates {
			colors[i] = c.ToStdColor()
			if total > 0 {
				shares[i] = float64(weights[i]) / float64(total)
			}
		}
		return NewPaletteWithWeights(colors, shares), nil
	}

	centroids, clusterWeights := e.kmeans(candidates, weights, count)

	colors := make([]color.Color, len(centroids))
	for i, c := range centroids {
		colors[i] = color.RGBA{
			R: clampByte(c.R),
			G: clampByte(c.G),
			B: clampByte(c.B),
			A: 255,
		}
	}

	return NewPaletteWithWeights(colors, clusterWeights), nil
}

// point3D represents a point in 3D RGB color space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// kmeans performs weighted k-means clustering over a deduplicated, filtered
// colour population. weights[i] is the pixel count backing candidates[i];
// it is folded into both centroid recalculation and the final cluster
// weights so a bucket that recurs across many pixels pulls its centroid
// proportionally harder than a bucket that only occurs once.
func (e *KMeansExtractor) kmeans(candidates []Color32, weights []int, k int) ([]point3D, []float64) {
	points := make([]point3D, len(candidates))
	for i, c := range candidates {
		points[i] = point3D{R: float64(c.R()), G: float64(c.G()), B: float64(c.B())}
	}

	centroids := e.initializeCentroidsKMeansPlusPlus(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := e.findNearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := e.recalculateCentroids(points, weights, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		avgMovement := totalMovement / float64(k)

		centroids = newCentroids

		if avgMovement < e.convergence {
			break
		}
	}

	clusterWeight := make([]float64, k)
	totalWeight := 0.0
	for i, assignment := range assignments {
		w := float64(weights[i])
		clusterWeight[assignment] += w
		totalWeight += w
	}
	if totalWeight > 0 {
		for i := range clusterWeight {
			clusterWeight[i] /= totalWeight
		}
	}

	return centroids, clusterWeight
}

// initializeCentroidsKMeansPlusPlus initializes centroids using k-means++ algorithm.
// This provides better initial centroids than random selection.
func (e *KMeansExtractor) initializeCentroidsKMeansPlusPlus(points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)

	// Choose first centroid randomly
	firstIdx := rand.Intn(len(points))
	centroids = append(centroids, points[firstIdx])

	// Choose remaining centroids
	for len(centroids) < k {
		// Calculate distances from each point to nearest centroid
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				dist := point.distance(centroid)
				if dist < minDist {
					minDist = dist
				}
			}
			// Square the distance for k-means++
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		// Choose next centroid with probability proportional to squared distance
		if totalDistance == 0 {
			// All remaining points are too close or identical to existing centroids
			// Just duplicate an existing centroid slightly perturbed
			if len(centroids) > 0 {
				// Duplicate the last centroid with a tiny perturbation
				lastCentroid := centroids[len(centroids)-1]
				centroids = append(centroids, point3D{
					R: lastCentroid.R + 0.1,
					G: lastCentroid.G + 0.1,
					B: lastCentroid.B + 0.1,
				})
			}
			continue
		}

		target := rand.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
func (e *KMeansExtractor) findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions as the
// population-weighted average of the points assigned to each cluster.
func (e *KMeansExtractor) recalculateCentroids(points []point3D, weights []int, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	totals := make([]float64, k)

	for i, point := range points {
		cluster := assignments[i]
		w := float64(weights[i])
		sums[cluster].R += point.R * w
		sums[cluster].G += point.G * w
		sums[cluster].B += point.B * w
		totals[cluster] += w
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if totals[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / totals[i],
				G: sums[i].G / totals[i],
				B: sums[i].B / totals[i],
			}
		} else {
			// Empty cluster - reinitialize randomly
			centroids[i] = points[rand.Intn(len(points))]
		}
	}

	return centroids
}
