package physics2d

import "math"

// ==================== IMPULSE RESOLVER ====================

// queuedImpulse defers an impulse's application until every contact in a
// manifold has been evaluated, so the two contacts of a manifold behave as
// a simultaneous solve rather than an order-dependent sequential one.
type queuedImpulse struct {
	impulse Vec2
	rA, rB  Vec2
}

// resolveCollision applies normal and Coulomb-friction impulses for every
// contact point in manifold to bodies a and b, then performs positional
// correction. It is a no-op if both bodies are static (the caller is
// expected to have already filtered that case, but this is defensive).
func resolveCollision(a, b *RigidBody, manifold *Manifold) {
	if a.isStatic && b.isStatic {
		return
	}

	restitution := math.Min(a.restitution, b.restitution)
	staticFriction := math.Min(a.staticFriction, b.staticFriction)
	dynamicFriction := math.Min(a.dynamicFriction, b.dynamicFriction)

	contactCount := manifold.ContactCount
	if contactCount == 0 {
		return
	}

	queued := make([]queuedImpulse, 0, contactCount*2)

	for c := 0; c < contactCount; c++ {
		contact := manifold.Contacts[c]

		rA := contact.Sub(a.position)
		rB := contact.Sub(b.position)
		rAPerp := Perp(rA)
		rBPerp := Perp(rB)

		relVel := b.linearVelocity.Add(Scale(rBPerp, b.angularVelocity)).
			Sub(a.linearVelocity.Add(Scale(rAPerp, a.angularVelocity)))

		vn := relVel.Dot(manifold.Normal)
		if vn > 0 {
			continue
		}

		rAPerpDotN := rAPerp.Dot(manifold.Normal)
		rBPerpDotN := rBPerp.Dot(manifold.Normal)
		normalDenom := a.inverseMass + b.inverseMass +
			(rAPerpDotN*rAPerpDotN)*a.inverseInertia +
			(rBPerpDotN*rBPerpDotN)*b.inverseInertia

		j := -(1 + restitution) * vn
		j /= normalDenom
		j /= float64(contactCount)

		normalImpulse := Scale(manifold.Normal, j)
		queued = append(queued, queuedImpulse{impulse: normalImpulse, rA: rA, rB: rB})

		tangent := relVel.Sub(Scale(manifold.Normal, relVel.Dot(manifold.Normal)))
		if LengthSquared(tangent) < closelyEqualTolerance*closelyEqualTolerance {
			continue
		}
		tangent = Normalise(tangent)

		rAPerpDotT := rAPerp.Dot(tangent)
		rBPerpDotT := rBPerp.Dot(tangent)
		tangentDenom := a.inverseMass + b.inverseMass +
			(rAPerpDotT*rAPerpDotT)*a.inverseInertia +
			(rBPerpDotT*rBPerpDotT)*b.inverseInertia

		jt := -relVel.Dot(tangent)
		jt /= tangentDenom
		jt /= float64(contactCount)

		var frictionImpulse Vec2
		if math.Abs(jt) <= j*staticFriction {
			frictionImpulse = Scale(tangent, jt)
		} else {
			frictionImpulse = Scale(tangent, -j*dynamicFriction)
		}

		queued = append(queued, queuedImpulse{impulse: frictionImpulse, rA: rA, rB: rB})
	}

	for _, q := range queued {
		a.linearVelocity = a.linearVelocity.Sub(Scale(q.impulse, a.inverseMass))
		b.linearVelocity = b.linearVelocity.Add(Scale(q.impulse, b.inverseMass))

		a.angularVelocity -= Cross(q.rA, q.impulse) * a.inverseInertia
		b.angularVelocity += Cross(q.rB, q.impulse) * b.inverseInertia
	}

	correctPositions(a, b, manifold)
}

// correctPositions nudges the two bodies apart along the collision normal
// to undo residual interpenetration beyond positionalSlop, split by
// inverse mass. Static bodies are never moved (their inverseMass is 0, so
// the split naturally excludes them).
func correctPositions(a, b *RigidBody, manifold *Manifold) {
	const percent = 0.4

	sum := a.inverseMass + b.inverseMass
	if sum <= 0 {
		return
	}

	depth := math.Max(manifold.Penetration-positionalSlop, 0)
	correction := Scale(manifold.Normal, depth/sum*percent)

	if !a.isStatic {
		a.position = a.position.Sub(Scale(correction, a.inverseMass))
		a.dirty = true
	}
	if !b.isStatic {
		b.position = b.position.Add(Scale(correction, b.inverseMass))
		b.dirty = true
	}
}
