package physics2d

import "math"

// ==================== MANIFOLD ====================

// Manifold describes the outcome of a single narrow-phase test between two
// bodies. It is ephemeral: valid only within the Step call that produced
// it. BodyA and BodyB are indices into the World's body sequence rather
// than pointers, since the sequence may be culled between steps.
type Manifold struct {
	BodyA, BodyB int
	Normal       Vec2 // unit length, points from A to B
	Contacts     [2]Vec2
	ContactCount int
	Penetration  float64
	InCollision  bool
}

// ==================== SAT NARROW-PHASE ====================

// satCollision runs the Separating Axis Theorem against two convex,
// counter-clockwise wound polygons in world space and, if they overlap,
// extracts up to two contact points. The verticesWorld of a and b must be
// fresh (callers refresh the world-space cache before invoking this).
func satCollision(a, b *RigidBody) Manifold {
	penetration := math.Inf(1)
	normal := Vec2{}
	inCollision := true

	if !satLoop(a.verticesWorld, b.verticesWorld, &penetration, &normal) {
		inCollision = false
	}
	if !satLoop(b.verticesWorld, a.verticesWorld, &penetration, &normal) {
		inCollision = false
	}

	manifold := Manifold{Normal: normal, Penetration: penetration, InCollision: inCollision}

	if !inCollision {
		return manifold
	}

	if normal.Dot(b.position.Sub(a.position)) < 0 {
		normal = Neg(normal)
		manifold.Normal = normal
	}

	contacts, count := getContactPoints(a.verticesWorld, b.verticesWorld)
	manifold.Contacts = contacts
	manifold.ContactCount = count

	return manifold
}

// satLoop tests every edge normal of polygon p as a candidate separating
// axis against polygon q. It returns false as soon as a separating axis is
// found. Otherwise it tracks the axis of minimum overlap depth into
// *penetration/*normal, updating them only when a shallower overlap is
// found (across both calls with p and q swapped).
func satLoop(p, q []Vec2, penetration *float64, normal *Vec2) bool {
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		edge := b.Sub(a)
		axis := Normalise(Vec2{-edge.Y(), edge.X()})

		minA, maxA := projectPolygon(p, axis)
		minB, maxB := projectPolygon(q, axis)

		if maxA < minB || maxB < minA {
			return false
		}

		depth := math.Min(maxA-minB, maxB-minA)
		if depth < *penetration {
			*penetration = depth
			*normal = axis
		}
	}

	return true
}

// projectPolygon returns the [min,max] interval of vertices' dot products
// with axis.
func projectPolygon(vertices []Vec2, axis Vec2) (min, max float64) {
	min = vertices[0].Dot(axis)
	max = min
	for _, v := range vertices[1:] {
		p := v.Dot(axis)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}

// ==================== CONTACT EXTRACTION ====================

type contactCandidate struct {
	point  Vec2
	distSq float64
}

// getContactPoints finds up to two contact points between overlapping
// convex polygons a and b by, for every vertex of one polygon, finding the
// closest point on every edge of the other (and vice versa), then
// accepting every candidate within contactMergeToleranceSq of the global
// minimum squared distance. The first accepted candidate is always kept;
// the second is kept only if it is not closely equal to the first, so a
// vertex-on-edge collision naturally collapses to a single contact.
func getContactPoints(a, b []Vec2) ([2]Vec2, int) {
	candidates := make([]contactCandidate, 0, (len(a)+len(b))*2)

	gather := func(verts, edges []Vec2) {
		n := len(edges)
		for _, v := range verts {
			for i := 0; i < n; i++ {
				e1 := edges[i]
				e2 := edges[(i+1)%n]
				distSq, contact := pointSegmentDistanceSquared(e1, e2, v)
				candidates = append(candidates, contactCandidate{point: contact, distSq: distSq})
			}
		}
	}

	gather(a, b)
	gather(b, a)

	if len(candidates) == 0 {
		return [2]Vec2{}, 0
	}

	minDistSq := candidates[0].distSq
	for _, c := range candidates[1:] {
		if c.distSq < minDistSq {
			minDistSq = c.distSq
		}
	}

	threshold := minDistSq + contactMergeToleranceSq

	var contacts [2]Vec2
	count := 0

	for _, c := range candidates {
		if c.distSq <= threshold {
			contacts[0] = c.point
			count = 1
			break
		}
	}

	for _, c := range candidates {
		if c.distSq <= threshold && !vecCloselyEqual(contacts[0], c.point) {
			contacts[1] = c.point
			count = 2
			break
		}
	}

	return contacts, count
}
