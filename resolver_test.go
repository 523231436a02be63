package physics2d

import (
	"math"
	"testing"
)

func headOnBoxes(t *testing.T, restitution float64) (*RigidBody, *RigidBody) {
	t.Helper()

	a := NewBoxBody(1, 1, 1)
	a.SnapTo(Vec2{-0.45, 0})
	a.SetLinearVelocity(Vec2{5, 0})
	a.SetRestitution(restitution)
	a.SetFriction(0, 0)

	b := NewBoxBody(1, 1, 1)
	b.SnapTo(Vec2{0.45, 0})
	b.SetLinearVelocity(Vec2{-5, 0})
	b.SetRestitution(restitution)
	b.SetFriction(0, 0)

	refreshWorldSpace(a)
	refreshWorldSpace(b)
	return a, b
}

func TestResolveCollisionHeadOnElasticSwapsVelocities(t *testing.T) {
	a, b := headOnBoxes(t, 1.0)

	m := satCollision(a, b)
	if !m.InCollision {
		t.Fatal("expected collision")
	}

	resolveCollision(a, b, &m)

	if math.Abs(a.linearVelocity.X()-(-5)) > 1e-3 {
		t.Errorf("A.vx = %v, want -5", a.linearVelocity.X())
	}
	if math.Abs(b.linearVelocity.X()-5) > 1e-3 {
		t.Errorf("B.vx = %v, want 5", b.linearVelocity.X())
	}
}

func TestResolveCollisionConservesMomentum(t *testing.T) {
	a, b := headOnBoxes(t, 0.6)

	pBefore := Scale(a.linearVelocity, a.mass).Add(Scale(b.linearVelocity, b.mass))

	m := satCollision(a, b)
	if !m.InCollision {
		t.Fatal("expected collision")
	}
	resolveCollision(a, b, &m)

	pAfter := Scale(a.linearVelocity, a.mass).Add(Scale(b.linearVelocity, b.mass))

	if math.Abs(pBefore.X()-pAfter.X()) > 1e-4 || math.Abs(pBefore.Y()-pAfter.Y()) > 1e-4 {
		t.Errorf("momentum not conserved: before %v after %v", pBefore, pAfter)
	}
}

func TestResolveCollisionConservesEnergyWhenElastic(t *testing.T) {
	a, b := headOnBoxes(t, 1.0)

	kineticBefore := 0.5*a.mass*LengthSquared(a.linearVelocity) +
		0.5*b.mass*LengthSquared(b.linearVelocity)

	m := satCollision(a, b)
	if !m.InCollision {
		t.Fatal("expected collision")
	}
	resolveCollision(a, b, &m)

	kineticAfter := 0.5*a.mass*LengthSquared(a.linearVelocity) +
		0.5*b.mass*LengthSquared(b.linearVelocity) +
		0.5*a.inertia*a.angularVelocity*a.angularVelocity +
		0.5*b.inertia*b.angularVelocity*b.angularVelocity

	if math.Abs(kineticBefore-kineticAfter) > 1e-3 {
		t.Errorf("energy not conserved: before %v after %v", kineticBefore, kineticAfter)
	}
}

func TestResolveCollisionSeparatingContactsAreSkipped(t *testing.T) {
	a := NewBoxBody(1, 1, 1)
	a.SnapTo(Vec2{-0.45, 0})
	a.SetLinearVelocity(Vec2{-5, 0}) // moving away from b

	b := NewBoxBody(1, 1, 1)
	b.SnapTo(Vec2{0.45, 0})
	b.SetLinearVelocity(Vec2{5, 0}) // moving away from a

	refreshWorldSpace(a)
	refreshWorldSpace(b)
	m := satCollision(a, b)
	if !m.InCollision {
		t.Fatal("expected geometric overlap")
	}

	beforeA, beforeB := a.linearVelocity, b.linearVelocity
	resolveCollision(a, b, &m)

	if a.linearVelocity != beforeA || b.linearVelocity != beforeB {
		t.Error("velocities of already-separating bodies should be untouched by the normal impulse")
	}
}

func TestCorrectPositionsIgnoresStaticStatic(t *testing.T) {
	a := NewBoxBody(1, 1, 0)
	b := NewBoxBody(1, 1, 0)
	a.SnapTo(Vec2{0, 0})
	b.SnapTo(Vec2{0.5, 0})

	m := Manifold{Normal: Vec2{1, 0}, Penetration: 0.5, InCollision: true, ContactCount: 1}
	beforeA, beforeB := a.position, b.position

	correctPositions(a, b, &m)

	if a.position != beforeA || b.position != beforeB {
		t.Error("static-static pair should never move under positional correction")
	}
}
