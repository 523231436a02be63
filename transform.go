package physics2d

import "math"

// ==================== TRANSFORM ====================

// transformPoint converts a local-space point to world space given a body
// position and rotation (radians). Positive rotation is counter-clockwise,
// the standard math convention.
func transformPoint(local, position Vec2, rotation float64) Vec2 {
	c := math.Cos(rotation)
	s := math.Sin(rotation)
	rotated := Vec2{
		local.X()*c - local.Y()*s,
		local.X()*s + local.Y()*c,
	}
	return rotated.Add(position)
}

// refreshWorldSpace rebuilds body.verticesWorld from (verticesLocal,
// position, rotation) if the cache is stale, then clears the dirty flag.
// Every consumer of verticesWorld (AABB, SAT, contact extraction,
// rendering) must call this first.
func refreshWorldSpace(body *RigidBody) {
	if !body.dirty && len(body.verticesWorld) != 0 {
		return
	}

	if cap(body.verticesWorld) < len(body.verticesLocal) {
		body.verticesWorld = make([]Vec2, len(body.verticesLocal))
	} else {
		body.verticesWorld = body.verticesWorld[:len(body.verticesLocal)]
	}

	for i, local := range body.verticesLocal {
		body.verticesWorld[i] = transformPoint(local, body.position, body.rotation)
	}

	body.dirty = false
}
