package sim

import "math"

// Footprint is an axis-aligned ground-plane extent, used to ask a surface
// what lies beneath a craft.
type Footprint struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// CenterX returns the x coordinate of the footprint's center.
func (f Footprint) CenterX() float64 { return (f.MinX + f.MaxX) / 2 }

// CenterZ returns the z coordinate of the footprint's center.
func (f Footprint) CenterZ() float64 { return (f.MinZ + f.MaxZ) / 2 }

// Surface answers ground queries for a footprint. Implementations hide the
// terrain representation, so the physics engine works the same over a 2D
// height profile and a 3D triangle mesh.
type Surface interface {
	// SupportHeight returns the highest ground y under the footprint and
	// whether any ground lies under it at all.
	SupportHeight(f Footprint) (float64, bool)

	// OnLandingPad reports whether the footprint rests entirely on
	// flattened pad ground.
	OnLandingPad(f Footprint) bool
}

// Segment is one piece of a 2D terrain profile, a straight line from
// (X1, Y1) to (X2, Y2) with X1 < X2.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Pad    bool
}

// heightAt linearly interpolates the segment's height at x. The caller
// guarantees x is within [X1, X2].
func (s Segment) heightAt(x float64) float64 {
	if s.X2 == s.X1 {
		return math.Max(s.Y1, s.Y2)
	}
	t := (x - s.X1) / (s.X2 - s.X1)
	return s.Y1 + t*(s.Y2-s.Y1)
}

// SegmentSurface is a 2D terrain profile made of contiguous line segments.
type SegmentSurface struct {
	segments []Segment
}

// NewSegmentSurface wraps a segment list as a queryable surface.
func NewSegmentSurface(segments []Segment) *SegmentSurface {
	return &SegmentSurface{segments: segments}
}

// Segments returns the underlying profile for rendering.
func (s *SegmentSurface) Segments() []Segment {
	return s.segments
}

// SupportHeight returns the highest terrain point under the footprint's
// x range. The z extent is ignored in 2D.
func (s *SegmentSurface) SupportHeight(f Footprint) (float64, bool) {
	best := math.Inf(-1)
	found := false

	for _, seg := range s.segments {
		if seg.X2 < f.MinX || seg.X1 > f.MaxX {
			continue
		}
		found = true

		// The maximum over an interval of a linear function is at one
		// of the clipped endpoints.
		lo := math.Max(seg.X1, f.MinX)
		hi := math.Min(seg.X2, f.MaxX)
		best = math.Max(best, math.Max(seg.heightAt(lo), seg.heightAt(hi)))
	}

	if !found {
		return 0, false
	}
	return best, true
}

// OnLandingPad reports whether every segment under the footprint is pad
// ground. A footprint overhanging the profile edge is not on a pad.
func (s *SegmentSurface) OnLandingPad(f Footprint) bool {
	covered := false

	for _, seg := range s.segments {
		if seg.X2 < f.MinX || seg.X1 > f.MaxX {
			continue
		}
		if !seg.Pad {
			return false
		}
		covered = true
	}
	return covered
}

// Triangle is one face of a 3D terrain mesh with a precomputed unit normal.
type Triangle struct {
	V      [3]Vec3
	Normal Vec3
	Pad    bool
}

// maxY returns the triangle's highest vertex height.
func (t Triangle) maxY() float64 {
	return math.Max(t.V[0].Y, math.Max(t.V[1].Y, t.V[2].Y))
}

// overlapsXZ reports whether the triangle's ground-plane bounding box
// overlaps the footprint. A bounding-box test overestimates contact near
// diagonal edges, which errs toward earlier touchdown rather than letting
// the craft sink into a face.
func (t Triangle) overlapsXZ(f Footprint) bool {
	minX := math.Min(t.V[0].X, math.Min(t.V[1].X, t.V[2].X))
	maxX := math.Max(t.V[0].X, math.Max(t.V[1].X, t.V[2].X))
	minZ := math.Min(t.V[0].Z, math.Min(t.V[1].Z, t.V[2].Z))
	maxZ := math.Max(t.V[0].Z, math.Max(t.V[1].Z, t.V[2].Z))

	return maxX >= f.MinX && minX <= f.MaxX && maxZ >= f.MinZ && minZ <= f.MaxZ
}

// TriangleSurface is a 3D terrain mesh.
type TriangleSurface struct {
	triangles []Triangle
}

// NewTriangleSurface wraps a triangle list as a queryable surface.
func NewTriangleSurface(triangles []Triangle) *TriangleSurface {
	return &TriangleSurface{triangles: triangles}
}

// Triangles returns the underlying mesh for rendering.
func (s *TriangleSurface) Triangles() []Triangle {
	return s.triangles
}

// SupportHeight returns the highest vertex among triangles whose
// ground-plane bounds overlap the footprint.
func (s *TriangleSurface) SupportHeight(f Footprint) (float64, bool) {
	best := math.Inf(-1)
	found := false

	for _, tri := range s.triangles {
		if !tri.overlapsXZ(f) {
			continue
		}
		found = true
		best = math.Max(best, tri.maxY())
	}

	if !found {
		return 0, false
	}
	return best, true
}

// OnLandingPad reports whether every overlapping triangle is pad ground.
func (s *TriangleSurface) OnLandingPad(f Footprint) bool {
	covered := false

	for _, tri := range s.triangles {
		if !tri.overlapsXZ(f) {
			continue
		}
		if !tri.Pad {
			return false
		}
		covered = true
	}
	return covered
}
