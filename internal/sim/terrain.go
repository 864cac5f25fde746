package sim

import (
	"math"
	"math/rand"
)

// TerrainParams control procedural surface generation.
type TerrainParams struct {
	Cells       int     // Samples along x is Cells+1
	MinHeight   float64 // Height clamp floor
	MaxHeight   float64 // Height clamp ceiling
	MaxWalkStep float64 // Per-cell random walk bound
	PadCount    int     // Landing pads to flatten
	PadWidth    float64 // Minimum pad width in world units
}

// Generator builds terrain surfaces from a seeded random walk. The same
// seed and params always yield the same surface.
type Generator struct {
	params TerrainParams
	rng    *rand.Rand
}

// NewGenerator creates a terrain generator with its own RNG stream.
func NewGenerator(params TerrainParams, seed int64) *Generator {
	return &Generator{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// profile produces the shared height samples and per-cell pad flags that
// both the 2D and 3D surfaces are built from.
func (g *Generator) profile(worldWidth float64) (heights []float64, padCell []bool, cellW float64) {
	n := g.params.Cells
	cellW = worldWidth / float64(n)

	heights = make([]float64, n+1)
	mid := (g.params.MinHeight + g.params.MaxHeight) / 2
	h := mid + (g.rng.Float64()-0.5)*(g.params.MaxHeight-g.params.MinHeight)/2

	for i := range heights {
		heights[i] = clampHeight(h, g.params)
		h += (g.rng.Float64()*2 - 1) * g.params.MaxWalkStep
	}

	padCell = make([]bool, n)
	padCells := int(math.Ceil(g.params.PadWidth / cellW))
	if padCells < 1 {
		padCells = 1
	}
	if padCells > n {
		padCells = n
	}

	for placed := 0; placed < g.params.PadCount; placed++ {
		start := g.rng.Intn(n - padCells + 1)
		for i := start; i < start+padCells; i++ {
			padCell[i] = true
		}
	}

	// Flatten each contiguous run of pad cells to a single level, so pads
	// that overlap merge into one wider flat pad rather than leaving a
	// sloped seam.
	for i := 0; i < n; {
		if !padCell[i] {
			i++
			continue
		}
		j := i
		for j < n && padCell[j] {
			j++
		}
		level := heights[i]
		for k := i; k <= j; k++ {
			heights[k] = level
		}
		i = j
	}
	return heights, padCell, cellW
}

// Generate2D builds a segment profile spanning [0, worldWidth].
func (g *Generator) Generate2D(worldWidth float64) *SegmentSurface {
	heights, padCell, cellW := g.profile(worldWidth)

	segments := make([]Segment, g.params.Cells)
	for i := range segments {
		segments[i] = Segment{
			X1:  float64(i) * cellW,
			Y1:  heights[i],
			X2:  float64(i+1) * cellW,
			Y2:  heights[i+1],
			Pad: padCell[i],
		}
	}
	return NewSegmentSurface(segments)
}

// Generate3D builds a triangle mesh spanning [0, worldWidth] by
// [0, worldLength]. The height profile is extruded along z, so ridges run
// the full depth of the world; two triangles cover each grid cell.
func (g *Generator) Generate3D(worldWidth, worldLength float64) *TriangleSurface {
	heights, padCell, cellW := g.profile(worldWidth)

	depthCells := g.params.Cells
	cellD := worldLength / float64(depthCells)

	heightAt := func(xi, _ int) float64 { return heights[xi] }
	padAt := func(xi, _ int) bool { return padCell[xi] }

	return NewTriangleSurface(buildMesh(g.params.Cells, depthCells, cellW, cellD, heightAt, padAt))
}

// buildMesh triangulates a height grid. heightAt is indexed by sample
// (0..cellsX, 0..cellsZ); padAt by cell (0..cellsX-1, 0..cellsZ-1).
func buildMesh(cellsX, cellsZ int, cellW, cellD float64, heightAt func(xi, zi int) float64, padAt func(xi, zi int) bool) []Triangle {
	triangles := make([]Triangle, 0, cellsX*cellsZ*2)

	for zi := 0; zi < cellsZ; zi++ {
		for xi := 0; xi < cellsX; xi++ {
			x0 := float64(xi) * cellW
			x1 := float64(xi+1) * cellW
			z0 := float64(zi) * cellD
			z1 := float64(zi+1) * cellD

			a := Vec3{x0, heightAt(xi, zi), z0}
			b := Vec3{x1, heightAt(xi+1, zi), z0}
			c := Vec3{x1, heightAt(xi+1, zi+1), z1}
			d := Vec3{x0, heightAt(xi, zi+1), z1}
			pad := padAt(xi, zi)

			triangles = append(triangles,
				newTriangle(a, b, c, pad),
				newTriangle(a, c, d, pad),
			)
		}
	}
	return triangles
}

// newTriangle computes the face normal and orients it upward.
func newTriangle(a, b, c Vec3, pad bool) Triangle {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	if n.Y < 0 {
		n = n.Scale(-1)
	}
	return Triangle{V: [3]Vec3{a, b, c}, Normal: n, Pad: pad}
}

func clampHeight(h float64, p TerrainParams) float64 {
	if h < p.MinHeight {
		return p.MinHeight
	}
	if h > p.MaxHeight {
		return p.MaxHeight
	}
	return h
}
