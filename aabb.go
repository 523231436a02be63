package physics2d

// ==================== AABB ====================

// AABB is an axis-aligned bounding rectangle.
type AABB struct {
	Min, Max Vec2
}

// computeAABB returns the tightest axis-aligned box enclosing body's
// world-space vertices. Precondition: the world-space cache is fresh —
// call refreshWorldSpace(body) first.
func computeAABB(body *RigidBody) AABB {
	verts := body.verticesWorld
	minX, minY := verts[0].X(), verts[0].Y()
	maxX, maxY := minX, minY

	for _, v := range verts[1:] {
		if v.X() < minX {
			minX = v.X()
		}
		if v.Y() < minY {
			minY = v.Y()
		}
		if v.X() > maxX {
			maxX = v.X()
		}
		if v.Y() > maxY {
			maxY = v.Y()
		}
	}

	return AABB{Min: Vec2{minX, minY}, Max: Vec2{maxX, maxY}}
}

// Overlaps reports whether a and b intersect. Touching edges count as
// overlap.
func (a AABB) Overlaps(b AABB) bool {
	if a.Max.X() < b.Min.X() || b.Max.X() < a.Min.X() {
		return false
	}
	if a.Max.Y() < b.Min.Y() || b.Max.Y() < a.Min.Y() {
		return false
	}
	return true
}
